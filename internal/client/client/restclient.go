package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/netx"
)

type RESTClient struct {
	baseURL string
	http    *http.Client
	storage *http.Client
}

var _ Client = (*RESTClient)(nil)

// NewRESTClient talks to the server at baseURL (e.g. "http://127.0.0.1:8080").
// timeout bounds every single request.
func NewRESTClient(baseURL string, timeout time.Duration) (*RESTClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server address %q", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
			// image redirects are read, not followed
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		storage: &http.Client{Timeout: timeout},
	}, nil
}

// do sends in as JSON and decodes a 2xx body into out. Non-2xx answers
// become *APIError.
func (c *RESTClient) do(ctx context.Context, method, path string, in, out any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return resp, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp, fmt.Errorf("error decoding response: %w", err)
		}
	}
	return resp, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(b, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Code = "http_error"
		apiErr.Message = resp.Status
	}
	return apiErr
}

func (c *RESTClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/health", nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusServiceUnavailable {
		return fmt.Errorf("%w: store unreachable", ErrUnavailable)
	}
	return err
}

type userEnvelope struct {
	User *models.User `json:"user"`
}

func (c *RESTClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	var out userEnvelope
	_, err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var out userEnvelope
	_, err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *RESTClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	return err
}

func (c *RESTClient) Me(ctx context.Context) (*models.User, error) {
	var out userEnvelope
	if _, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

type recipesEnvelope struct {
	Recipes []models.Recipe `json:"recipes"`
}

func (c *RESTClient) ListRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	path := "/api/recipes"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var out recipesEnvelope
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

func (c *RESTClient) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	var out recipesEnvelope
	if _, err := c.do(ctx, http.MethodGet, "/api/recipes/search?q="+url.QueryEscape(query), nil, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

func (c *RESTClient) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	var out struct {
		Recipe *models.Recipe `json:"recipe"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/recipes/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Recipe, nil
}

func (c *RESTClient) CreateRecipe(ctx context.Context, in models.RecipeInput) (string, error) {
	var out struct {
		RecipeID string `json:"recipeId"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/recipes", in, &out); err != nil {
		return "", err
	}
	return out.RecipeID, nil
}

func (c *RESTClient) UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) error {
	_, err := c.do(ctx, http.MethodPut, "/api/recipes/"+url.PathEscape(id), in, nil)
	return err
}

func (c *RESTClient) DeleteRecipe(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/recipes/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *RESTClient) ToggleFavorite(ctx context.Context, recipeID string) (bool, error) {
	var out struct {
		Favorited bool `json:"favorited"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/favorites/toggle", map[string]string{"recipeId": recipeID}, &out); err != nil {
		return false, err
	}
	return out.Favorited, nil
}

func (c *RESTClient) FavoriteIDs(ctx context.Context) ([]string, error) {
	var out struct {
		FavoriteIDs []string `json:"favoriteIds"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out.FavoriteIDs, nil
}

func (c *RESTClient) FavoriteRecipes(ctx context.Context) ([]models.Recipe, error) {
	var out recipesEnvelope
	if _, err := c.do(ctx, http.MethodGet, "/api/favorites/recipes", nil, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

func (c *RESTClient) ImageUploadURL(ctx context.Context, recipeID string) (string, string, error) {
	var out struct {
		Key       string `json:"key"`
		UploadURL string `json:"uploadUrl"`
	}
	if _, err := c.do(ctx, http.MethodPost, "/api/recipes/"+url.PathEscape(recipeID)+"/image", nil, &out); err != nil {
		return "", "", err
	}
	return out.Key, out.UploadURL, nil
}

// ImageURL returns where the recipe image lives, without fetching it.
func (c *RESTClient) ImageURL(ctx context.Context, recipeID string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/recipes/"+url.PathEscape(recipeID)+"/image", nil, nil)
	if err != nil {
		return "", err
	}

	loc := resp.Header.Get("Location")
	if loc == "" {
		return "", fmt.Errorf("no image location in response (%s)", resp.Status)
	}
	return loc, nil
}

// UploadObject PUTs data to a presigned storage URL. The session cookie is
// not sent there.
func (c *RESTClient) UploadObject(ctx context.Context, url string, data []byte, contentType string) error {
	if err := netx.PutPresigned(ctx, c.storage, url, data, contentType); err != nil {
		return fmt.Errorf("error uploading image: %w", err)
	}
	return nil
}
