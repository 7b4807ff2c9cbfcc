package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// fakeAPI is an in-memory client.Client.
type fakeAPI struct {
	user    *models.User
	recipes map[string]*models.Recipe
	favs    map[string]bool
	nextID  int

	pingErr  error
	loginErr error
	err      error // returned by every recipe call when set

	lastPassword string
	lastCategory string
	lastQuery    string
	uploaded     []byte
	uploadedType string
	created      []models.RecipeInput
	updated      []models.RecipeInput
}

var _ client.Client = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{recipes: map[string]*models.Recipe{}, favs: map[string]bool{}}
}

func (f *fakeAPI) add(r models.Recipe) {
	cp := r
	f.recipes[r.ID] = &cp
}

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

func (f *fakeAPI) Register(_ context.Context, name, email, password string) (*models.User, error) {
	f.lastPassword = password
	f.user = &models.User{ID: 1, Name: name, Email: email}
	return f.user, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.User, error) {
	f.lastPassword = password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = &models.User{ID: 1, Name: "Ann", Email: email}
	return f.user, nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.user = nil
	return nil
}

func (f *fakeAPI) Me(context.Context) (*models.User, error) {
	if f.user == nil {
		return nil, client.ErrUnauthorized
	}
	return f.user, nil
}

func (f *fakeAPI) ListRecipes(_ context.Context, category string) ([]models.Recipe, error) {
	f.lastCategory = category
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Recipe
	for _, r := range f.recipes {
		if category == "" || r.Category == category {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeAPI) SearchRecipes(_ context.Context, q string) ([]models.Recipe, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Recipe
	for _, r := range f.recipes {
		if strings.Contains(strings.ToLower(r.Title), strings.ToLower(q)) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetRecipe(_ context.Context, id string) (*models.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.recipes[id]
	if !ok {
		return nil, &client.APIError{Status: 404, Code: "not_found", Message: "Not found"}
	}
	cp := *r
	return &cp, nil
}

func (f *fakeAPI) CreateRecipe(_ context.Context, in models.RecipeInput) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, in)
	f.nextID++
	id := "r" + string(rune('0'+f.nextID))
	f.add(fromInput(id, in))
	return id, nil
}

func (f *fakeAPI) UpdateRecipe(_ context.Context, id string, in models.RecipeInput) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.recipes[id]; !ok {
		return &client.APIError{Status: 404, Code: "not_found", Message: "Not found"}
	}
	f.updated = append(f.updated, in)
	f.add(fromInput(id, in))
	return nil
}

func (f *fakeAPI) DeleteRecipe(_ context.Context, id string) error {
	if _, ok := f.recipes[id]; !ok {
		return &client.APIError{Status: 404, Code: "not_found", Message: "Not found"}
	}
	delete(f.recipes, id)
	delete(f.favs, id)
	return nil
}

func (f *fakeAPI) ToggleFavorite(_ context.Context, id string) (bool, error) {
	if _, ok := f.recipes[id]; !ok {
		return false, &client.APIError{Status: 404, Code: "not_found", Message: "Not found"}
	}
	f.favs[id] = !f.favs[id]
	if !f.favs[id] {
		delete(f.favs, id)
		return false, nil
	}
	return true, nil
}

func (f *fakeAPI) FavoriteIDs(context.Context) ([]string, error) {
	var ids []string
	for id := range f.favs {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeAPI) FavoriteRecipes(context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	for id := range f.favs {
		out = append(out, *f.recipes[id])
	}
	return out, nil
}

func (f *fakeAPI) ImageUploadURL(_ context.Context, id string) (string, string, error) {
	return "recipes/1/" + id + "/img", "http://storage.local/put?sig=1", nil
}

func (f *fakeAPI) ImageURL(_ context.Context, id string) (string, error) {
	r, ok := f.recipes[id]
	if !ok || (r.ImageURL == "" && r.ImagePath == "") {
		return "", &client.APIError{Status: 404, Code: "not_found", Message: "Not found"}
	}
	if r.ImageURL != "" {
		return r.ImageURL, nil
	}
	return "http://storage.local/" + r.ImagePath, nil
}

func (f *fakeAPI) UploadObject(_ context.Context, _ string, data []byte, contentType string) error {
	f.uploaded = data
	f.uploadedType = contentType
	return nil
}

func fromInput(id string, in models.RecipeInput) models.Recipe {
	r := models.Recipe{
		ID: id, Title: in.Title, Time: in.Time, Servings: 2, Category: in.Category,
		SourceURL: in.SourceURL, ImageURL: in.ImageURL, ImagePath: in.ImagePath,
		Ingredients: in.Ingredients, Steps: in.Steps, Notes: in.Notes,
	}
	if in.Servings != nil {
		r.Servings = *in.Servings
	}
	return r
}

// newTestApp wires an App to api with the given stdin lines.
func newTestApp(api *fakeAPI, lines ...string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	return &App{
		api:    api,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    &out,
		screen: ScreenList,
	}, &out
}

func loggedIn(a *App) *App {
	a.user = &models.User{ID: 1, Name: "Ann", Email: "ann@example.com"}
	return a
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}
