// Package cli is the interactive RecipeBox terminal client.
//
// App reads commands from a line-oriented REPL and calls the server through
// client.Client. The prompt shows who is logged in and which screen is
// active: the recipe list, a single recipe, the add/edit form or cook mode.
//
// Cook mode walks a recipe one step at a time; the step cursor stays within
// the first and last step.
package cli
