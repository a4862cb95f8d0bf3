package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ReceivedRequest is a request recorded by the ingestion service mock.
type ReceivedRequest struct {
	Fields   map[string]string
	FileName string
	FileBody string
}

type cannedResponse struct {
	status int
	body   map[string]any
}

// IngestionApi fakes the ingestion service endpoints.
type IngestionApi struct {
	mu        sync.Mutex
	server    *httptest.Server
	received  map[string][]ReceivedRequest
	responses map[string]cannedResponse
}

// NewIngestionApi starts the mock server.
func NewIngestionApi() *IngestionApi {
	a := &IngestionApi{
		received:  map[string][]ReceivedRequest{},
		responses: map[string]cannedResponse{},
	}
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
	return a
}

func (a *IngestionApi) handle(w http.ResponseWriter, r *http.Request) {
	request := ReceivedRequest{Fields: map[string]string{}}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err == nil {
			for key, values := range r.MultipartForm.Value {
				request.Fields[key] = values[0]
			}
			if files := r.MultipartForm.File["file"]; len(files) > 0 {
				request.FileName = files[0].Filename
				if f, err := files[0].Open(); err == nil {
					content, _ := io.ReadAll(f)
					request.FileBody = string(content)
					f.Close()
				}
			}
		}
	} else if err := r.ParseForm(); err == nil {
		for key, values := range r.PostForm {
			request.Fields[key] = values[0]
		}
	}

	a.mu.Lock()
	a.received[r.URL.Path] = append(a.received[r.URL.Path], request)
	response, ok := a.responses[r.URL.Path]
	a.mu.Unlock()

	if !ok {
		response = cannedResponse{status: http.StatusOK, body: map[string]any{"status": "success"}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(response.status)
	_ = json.NewEncoder(w).Encode(response.body)
}

// URL returns the base URL of the mock.
func (a *IngestionApi) URL() string {
	return a.server.URL
}

// SetResponse sets the response for every request to path.
func (a *IngestionApi) SetResponse(path string, status int, body map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[path] = cannedResponse{status: status, body: body}
}

// Requests returns the requests received on path.
func (a *IngestionApi) Requests(path string) []ReceivedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]ReceivedRequest(nil), a.received[path]...)
}

// Reset forgets received requests and canned responses.
func (a *IngestionApi) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.received = map[string][]ReceivedRequest{}
	a.responses = map[string]cannedResponse{}
}

// Close stops the server.
func (a *IngestionApi) Close() {
	a.server.Close()
}
