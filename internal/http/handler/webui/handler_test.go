package webui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bornholm/checklist/internal/adapter/memory"
	"github.com/bornholm/checklist/internal/core/model"
	"github.com/bornholm/checklist/internal/core/service"
	"github.com/pkg/errors"
)

func newTestServer(t *testing.T) (*service.ListManager, *httptest.Server, *http.Client) {
	t.Helper()

	manager := service.NewListManager(
		service.WithListManagerStore(memory.NewStore()),
	)

	server := httptest.NewServer(NewHandler(manager))
	t.Cleanup(server.Close)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return manager, server, client
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return string(data)
}

func postForm(t *testing.T, client *http.Client, rawURL string, values url.Values, fragment bool) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if fragment {
		req.Header.Set("HX-Request", "true")
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res
}

func getPage(t *testing.T, client *http.Client, rawURL string, fragment bool) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if fragment {
		req.Header.Set("HX-Request", "true")
	}

	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res
}

func TestHomePage(t *testing.T) {
	_, server, client := newTestServer(t)

	res := getPage(t, client, server.URL+"/", false)

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	body := readBody(t, res)

	if !strings.Contains(body, "My Lists") {
		t.Errorf("body should contain the page heading")
	}

	if !strings.Contains(body, `id="recent-lists"`) {
		t.Errorf("body should contain the recently visited section")
	}
}

func TestCreateList(t *testing.T) {
	_, server, client := newTestServer(t)

	res := postForm(t, client, server.URL+"/", url.Values{"name": []string{"Groceries"}}, false)
	readBody(t, res)

	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	location := res.Header.Get("Location")

	if !strings.HasPrefix(location, "/lists/") {
		t.Fatalf("location: expected '/lists/{id}', got '%s'", location)
	}

	res = getPage(t, client, server.URL+location, false)

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if body := readBody(t, res); !strings.Contains(body, "Groceries") {
		t.Errorf("body should contain the list name")
	}
}

func TestCreateListNameTooLong(t *testing.T) {
	_, server, client := newTestServer(t)

	name := strings.Repeat("a", service.MaxNameLength+1)

	res := postForm(t, client, server.URL+"/", url.Values{"name": []string{name}}, false)

	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if body := readBody(t, res); !strings.Contains(body, "too long") {
		t.Errorf("body should contain the validation message")
	}
}

func TestListPageNotFound(t *testing.T) {
	_, server, client := newTestServer(t)

	res := getPage(t, client, server.URL+"/lists/missing", false)

	if e, g := http.StatusNotFound, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if body := readBody(t, res); !strings.Contains(body, "does not exist") {
		t.Errorf("body should contain the not found message")
	}
}

func TestAddItem(t *testing.T) {
	manager, server, client := newTestServer(t)

	list, err := manager.CreateList(t.Context(), "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	listURL := server.URL + "/lists/" + string(list.ID())

	// Plain form post: redirect back to the page.
	res := postForm(t, client, listURL+"/items", url.Values{"text": []string{"Milk"}}, false)
	readBody(t, res)

	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if e, g := "/lists/"+string(list.ID()), res.Header.Get("Location"); e != g {
		t.Errorf("location: expected '%s', got '%s'", e, g)
	}

	// Fragment post: refreshed list body, no layout.
	res = postForm(t, client, listURL+"/items", url.Values{"text": []string{"Eggs"}}, true)

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	body := readBody(t, res)

	if !strings.Contains(body, `id="list-body"`) {
		t.Errorf("fragment should contain the swap target")
	}

	if !strings.Contains(body, "Milk") || !strings.Contains(body, "Eggs") {
		t.Errorf("fragment should contain both items")
	}

	if strings.Contains(body, "<html") {
		t.Errorf("fragment should not contain the layout")
	}

	// The full page embeds the exact same region.
	res = getPage(t, client, listURL, false)
	page := readBody(t, res)

	if !strings.Contains(page, "<html") {
		t.Errorf("page should contain the layout")
	}

	if !strings.Contains(page, `id="list-body"`) {
		t.Errorf("page should contain the swappable region")
	}

	if !strings.Contains(page, "Milk") || !strings.Contains(page, "Eggs") {
		t.Errorf("page should contain both items")
	}
}

func TestAddItemValidation(t *testing.T) {
	manager, server, client := newTestServer(t)

	list, err := manager.CreateList(t.Context(), "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.AddItem(t.Context(), list.ID(), "Milk"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	itemsURL := server.URL + "/lists/" + string(list.ID()) + "/items"

	res := postForm(t, client, itemsURL, url.Values{"text": []string{"   "}}, true)

	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if body := readBody(t, res); !strings.Contains(body, "cannot be empty") {
		t.Errorf("body should contain the validation message")
	}

	res = postForm(t, client, itemsURL, url.Values{"text": []string{"milk"}}, true)

	if e, g := http.StatusUnprocessableEntity, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	body := readBody(t, res)

	if !strings.Contains(body, "already on the list") {
		t.Errorf("body should contain the duplicate message")
	}

	// The rejected input is preserved in the form.
	if !strings.Contains(body, `value="milk"`) {
		t.Errorf("body should preserve the submitted text")
	}
}

func TestEditItem(t *testing.T) {
	manager, server, client := newTestServer(t)

	list, err := manager.CreateList(t.Context(), "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	milk, err := manager.AddItem(t.Context(), list.ID(), "Milk")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	editURL := server.URL + "/lists/" + string(list.ID()) + "/items/" + string(milk.ID()) + "/edit"

	res := getPage(t, client, editURL, true)

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if body := readBody(t, res); !strings.Contains(body, `value="Milk"`) {
		t.Errorf("body should contain the edit form with the current text")
	}

	res = postForm(t, client, editURL, url.Values{"text": []string{"Oat Milk"}}, true)

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if body := readBody(t, res); !strings.Contains(body, "Oat Milk") {
		t.Errorf("body should contain the updated text")
	}

	updated, err := manager.GetItem(t.Context(), list.ID(), milk.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Oat Milk", updated.Text(); e != g {
		t.Errorf("updated.Text(): expected '%s', got '%s'", e, g)
	}
}

func TestEditItemNotFound(t *testing.T) {
	manager, server, client := newTestServer(t)

	list, err := manager.CreateList(t.Context(), "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	editURL := server.URL + "/lists/" + string(list.ID()) + "/items/missing/edit"

	res := getPage(t, client, editURL, false)
	readBody(t, res)

	if e, g := http.StatusNotFound, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}
}

func TestDeleteItem(t *testing.T) {
	manager, server, client := newTestServer(t)

	list, err := manager.CreateList(t.Context(), "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	milk, err := manager.AddItem(t.Context(), list.ID(), "Milk")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	deleteURL := server.URL + "/lists/" + string(list.ID()) + "/items/" + string(milk.ID()) + "/delete"

	res := postForm(t, client, deleteURL, url.Values{}, true)

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if body := readBody(t, res); strings.Contains(body, "Milk") {
		t.Errorf("body should not contain the deleted item")
	}

	// A second delete of the same item is harmless.
	res = postForm(t, client, deleteURL, url.Values{}, true)
	readBody(t, res)

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}
}

func TestDeleteList(t *testing.T) {
	manager, server, client := newTestServer(t)

	list, err := manager.CreateList(t.Context(), "Groceries")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.AddItem(t.Context(), list.ID(), "Milk"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	deleteURL := server.URL + "/lists/" + string(list.ID()) + "/delete"

	res := postForm(t, client, deleteURL, url.Values{}, false)
	readBody(t, res)

	if e, g := http.StatusSeeOther, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}

	if e, g := "/", res.Header.Get("Location"); e != g {
		t.Errorf("location: expected '%s', got '%s'", e, g)
	}

	res = getPage(t, client, server.URL+"/lists/"+string(list.ID()), false)
	readBody(t, res)

	if e, g := http.StatusNotFound, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected '%d', got '%d'", e, g)
	}
}

func TestListIDsAreUnique(t *testing.T) {
	manager, _, _ := newTestServer(t)

	seen := map[model.ListID]struct{}{}

	for i := 0; i < 100; i++ {
		list, err := manager.CreateList(t.Context(), "List")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if _, exists := seen[list.ID()]; exists {
			t.Fatalf("duplicate list id '%s'", list.ID())
		}

		seen[list.ID()] = struct{}{}
	}
}
