// Package server exposes element, void, attribute and sanitizer rendering over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tidwall/gjson"

	"github.com/swdunlop/markup-go"
	"github.com/swdunlop/markup-go/attr"
	"github.com/swdunlop/markup-go/dataview"
	"github.com/swdunlop/markup-go/el"
	"github.com/swdunlop/markup-go/hog"
	"github.com/swdunlop/markup-go/tag"
)

// New returns a handler serving the following routes:
//
//   - POST /element renders {"tag": ..., "attrs": {...}, "content": ...} as an element with a closing tag
//   - POST /void renders {"tag": ..., "attrs": {...}} as a void element
//   - POST /attrs renders a JSON or YAML attribute object as an attribute string
//   - POST /sanitize strips tags from a plain text body
//   - POST /view renders a JSON document as a dataview
//   - GET /tags lists the standard and void elements
//   - GET /metrics exposes Prometheus metrics
func New(options ...Option) http.Handler {
	cfg := &config{
		maxBody:  1 << 20,
		registry: prometheus.NewRegistry(),
	}
	for _, option := range options {
		option(cfg)
	}
	svc := &service{config: cfg, renders: newRenderCounter(cfg.registry)}

	r := chi.NewRouter()
	r.Use(hog.Middleware(cfg.injects...))
	r.Post(`/element`, svc.handle(`element`, svc.element))
	r.Post(`/void`, svc.handle(`void`, svc.void))
	r.Post(`/attrs`, svc.handle(`attrs`, svc.attrs))
	r.Post(`/sanitize`, svc.handle(`sanitize`, svc.sanitize))
	r.Post(`/view`, svc.handle(`view`, svc.view))
	r.Get(`/tags`, svc.tags)
	r.Method(`GET`, `/metrics`, promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{}))
	return r
}

// An Option affects the configuration of the server.
type Option func(*config)

// MaxBody limits the size of request bodies; by default this is 1 MiB.
func MaxBody(n int64) Option { return func(cfg *config) { cfg.maxBody = n } }

// Registry sets the Prometheus registry used for metrics; by default each server has its own.
func Registry(registry *prometheus.Registry) Option {
	return func(cfg *config) { cfg.registry = registry }
}

// Inject extends the log context of every request, see hog.Middleware.
func Inject(injects ...hog.Inject) Option {
	return func(cfg *config) { cfg.injects = append(cfg.injects, injects...) }
}

type config struct {
	maxBody  int64
	registry *prometheus.Registry
	injects  []hog.Inject
}

type service struct {
	*config
	renders *prometheus.CounterVec
}

func newRenderCounter(registry *prometheus.Registry) *prometheus.CounterVec {
	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: `markup`,
		Name:      `renders_total`,
		Help:      `Number of successful renders by kind.`,
	}, []string{`kind`})
	registry.MustRegister(renders)
	return renders
}

// A response is the rendered output and its content type.
type response struct {
	contentType string
	body        string
}

func (svc *service) handle(kind string, fn func(r *http.Request, body []byte) (response, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, svc.maxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				err = httpError{http.StatusRequestEntityTooLarge, err}
			}
			writeError(w, r, err)
			return
		}
		rsp, err := fn(r, body)
		if err != nil {
			writeError(w, r, err)
			return
		}
		svc.renders.WithLabelValues(kind).Inc()
		writeText(w, http.StatusOK, rsp.contentType, rsp.body)
	}
}

func (svc *service) element(r *http.Request, body []byte) (response, error) {
	name, attrs, doc, err := decodeElement(body)
	if err != nil {
		return response{}, err
	}
	var fn func() string
	if content := doc.Get(`content`); content.Exists() {
		if content.Type != gjson.String {
			return response{}, badRequest(`content must be a string`)
		}
		fn = func() string { return content.Str }
	}
	return html(tag.Element(name, attrs, fn)), nil
}

func (svc *service) void(r *http.Request, body []byte) (response, error) {
	name, attrs, _, err := decodeElement(body)
	if err != nil {
		return response{}, err
	}
	return html(tag.Void(name, attrs)), nil
}

func (svc *service) attrs(r *http.Request, body []byte) (response, error) {
	var (
		m   attr.Map
		err error
	)
	switch mediaType(r) {
	case ``, `application/json`:
		m, err = attr.ParseJSON(body)
	case `application/yaml`, `application/x-yaml`, `text/yaml`:
		m, err = attr.ParseYAML(body)
	default:
		return response{}, httpError{
			http.StatusUnsupportedMediaType,
			fmt.Errorf(`unsupported content type %q`, r.Header.Get(`Content-Type`)),
		}
	}
	if err != nil {
		return response{}, httpError{http.StatusBadRequest, err}
	}
	return response{`text/plain; charset=utf-8`, attr.Serialize(m)}, nil
}

func (svc *service) sanitize(r *http.Request, body []byte) (response, error) {
	return response{`text/plain; charset=utf-8`, markup.Sanitize(string(body))}, nil
}

func (svc *service) view(r *http.Request, body []byte) (response, error) {
	content, err := dataview.FromJSON(body)
	if err != nil {
		return response{}, httpError{http.StatusBadRequest, err}
	}
	return html(markup.String(content)), nil
}

func (svc *service) tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Standard []string `json:"standard"`
		Void     []string `json:"void"`
	}{el.Standard, el.Voids})
}

// decodeElement decodes the tag and attributes shared by element and void requests.
func decodeElement(body []byte) (string, attr.Map, gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return ``, nil, gjson.Result{}, badRequest(`request is not valid JSON`)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return ``, nil, doc, badRequest(`request must be a JSON object`)
	}
	name := doc.Get(`tag`)
	if name.Type != gjson.String || name.Str == `` {
		return ``, nil, doc, badRequest(`tag must be a non-empty string`)
	}
	attrs := doc.Get(`attrs`)
	switch {
	case !attrs.Exists(), attrs.Type == gjson.Null:
		return name.Str, nil, doc, nil
	case !attrs.IsObject():
		return ``, nil, doc, badRequest(`attrs must be an object`)
	}
	return name.Str, attr.FromGJSON(attrs), doc, nil
}

func html(body string) response { return response{`text/html; charset=utf-8`, body} }

func mediaType(r *http.Request) string {
	h := r.Header.Get(`Content-Type`)
	if h == `` {
		return ``
	}
	mt, _, err := mime.ParseMediaType(h)
	if err != nil {
		return h
	}
	return mt
}

type httpError struct {
	status int
	err    error
}

func (err httpError) Unwrap() error   { return err.err }
func (err httpError) Error() string   { return err.err.Error() }
func (err httpError) HTTPStatus() int { return err.status }

func badRequest(msg string) error { return httpError{http.StatusBadRequest, errors.New(msg)} }

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if impl, ok := err.(interface{ HTTPStatus() int }); ok {
		status = impl.HTTPStatus()
	}
	hog.From(r.Context()).Debug().Err(err).Int(`status`, status).Msg(`rejected`)
	writeText(w, status, `text/plain; charset=utf-8`, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	msg, err := json.Marshal(data)
	if err != nil {
		panic(err) // should not happen.
	}
	writeText(w, status, `application/json`, string(msg))
}

func writeText(w http.ResponseWriter, status int, contentType, text string) {
	h := w.Header()
	h.Set(`Content-Type`, contentType)
	h.Set(`Content-Length`, strconv.Itoa(len(text)))
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}
