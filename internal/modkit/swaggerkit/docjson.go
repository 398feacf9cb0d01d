// Package swaggerkit serves the Swagger UI and an OpenAPI 3 document that
// modules describe their own routes into
package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"clubhouse/internal/core/version"
	"clubhouse/internal/platform/config"
)

// SpecMutator lets modules add paths or tweak the OpenAPI document before it is served
type SpecMutator func(map[string]any)

// Documented is implemented by modules that describe their routes
type Documented interface {
	Docs() SpecMutator
}

// Param is a path or query parameter
type Param struct {
	Name     string
	In       string // path or query
	Type     string // defaults to string
	Required bool
	Desc     string
}

// Operation is the little of OAS3 a route needs here
type Operation struct {
	Summary string
	Tag     string
	Params  []Param

	// Body is an example request body; nil means no body
	Body any

	// Status defaults to 200
	Status  int
	Example any
}

// AddOperation adds op under path and method, creating the path node when needed
func AddOperation(spec map[string]any, method, path string, op Operation) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		paths = map[string]any{}
		spec["paths"] = paths
	}
	node, ok := paths[path].(map[string]any)
	if !ok {
		node = map[string]any{}
		paths[path] = node
	}

	status := op.Status
	if status == 0 {
		status = http.StatusOK
	}
	resp := map[string]any{"description": http.StatusText(status)}
	if status != http.StatusNoContent {
		body := map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/Envelope"}}
		if op.Example != nil {
			body["example"] = map[string]any{
				"status_code": status,
				"status":      http.StatusText(status),
				"data":        op.Example,
			}
		}
		resp["content"] = map[string]any{"application/json": body}
	}

	out := map[string]any{
		"summary":   op.Summary,
		"responses": map[string]any{strconv.Itoa(status): resp},
	}
	if op.Tag != "" {
		out["tags"] = []any{op.Tag}
	}
	if len(op.Params) > 0 {
		ps := make([]any, 0, len(op.Params))
		for _, p := range op.Params {
			typ := p.Type
			if typ == "" {
				typ = "string"
			}
			ps = append(ps, map[string]any{
				"name":        p.Name,
				"in":          p.In,
				"required":    p.Required || p.In == "path",
				"description": p.Desc,
				"schema":      map[string]any{"type": typ},
			})
		}
		out["parameters"] = ps
	}
	if op.Body != nil {
		out["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{
					"schema":  map[string]any{"type": "object"},
					"example": op.Body,
				},
			},
		}
	}
	node[strings.ToLower(method)] = out
}

func baseSpec() map[string]any {
	info := version.Info()
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "Clubhouse API",
			"version":     info.Version,
			"description": "Training schedules and Thai calendar date helpers",
		},
		"paths": map[string]any{},
	}
}

// buildSpec assembles the document for one request
func buildSpec(muts []SpecMutator) map[string]any {
	spec := baseSpec()
	ensureServers(spec, "/api/v1")

	cfg := config.New().Prefix("CLUB_API_")
	if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + v
			}
		}
	}

	ensureSchemas(spec)
	for _, m := range muts {
		if m != nil {
			m(spec)
		}
	}
	addDefaultError(spec)
	addDefaultBadRequest(spec)
	return spec
}

// serveDocJSON serves the assembled spec
func serveDocJSON(muts []SpecMutator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(buildSpec(muts))
	}
}

// ensureServers pins the OAS version the UI can render and sets servers
func ensureServers(spec map[string]any, url string) {
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// ensureSchemas adds the envelope models; kept minimal so they do not drift from the runtime wire
func ensureSchemas(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["Envelope"]; !ok {
		schemas["Envelope"] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer", "format": "int32"},
				"status":      map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
				"data":        map[string]any{},
				"page": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"total": map[string]any{"type": "integer"},
						"limit": map[string]any{"type": "integer"},
					},
				},
			},
			"required": []any{"status_code", "status"},
		}
	}
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = map[string]any{
			"type":        "object",
			"description": "Standard error response",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer", "format": "int32"},
				"status":      map[string]any{"type": "string"},
				"code":        map[string]any{"type": "string"},
				"error":       map[string]any{"type": "string"},
				"field":       map[string]any{"type": "string"},
				"fields": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "string"},
				},
				"request_id": map[string]any{"type": "string"},
			},
			"required": []any{"status_code", "status"},
		}
	}
}

func errorResponse(desc string, example map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// eachOperation calls fn with the responses map of every operation
func eachOperation(spec map[string]any, fn func(method string, responses map[string]any)) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for method, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			fn(method, responses)
		}
	}
}

// addDefaultError injects a 500 response into every operation lacking one
func addDefaultError(spec map[string]any) {
	resp := errorResponse("Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        "panic",
		"error":       "panic recovered",
		"request_id":  "club-host/abc-000001",
	})
	eachOperation(spec, func(_ string, responses map[string]any) {
		if _, exists := responses["500"]; !exists {
			responses["500"] = resp
		}
	})
}

// addDefaultBadRequest injects the validation 400 into operations with a body
func addDefaultBadRequest(spec map[string]any) {
	resp := errorResponse("Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        "validation",
		"error":       "กรุณาระบุชื่อการฝึกซ้อม",
		"field":       "title",
		"fields":      map[string]any{"title": "กรุณาระบุชื่อการฝึกซ้อม"},
		"request_id":  "club-host/abc-000001",
	})
	eachOperation(spec, func(method string, responses map[string]any) {
		switch method {
		case "post", "put", "patch":
		default:
			return
		}
		if _, exists := responses["400"]; !exists {
			responses["400"] = resp
		}
	})
}
