package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Portail des Résultats API",
        "description": "Public portal for Mauritanian exam results (Bac, BEPC, Concours)",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Results", "description": "Result search, lookup, detail, slip and sharing"},
        {"name": "References", "description": "Wilayas, establishments, series and sessions"},
        {"name": "Statistics", "description": "Aggregate statistics and leaderboards"},
        {"name": "Admin", "description": "Privileged area: sessions, uploads, exports"}
    ],
    "paths": {
        "/results/search": {
            "get": {
                "tags": ["Results"],
                "summary": "Multi-criteria result search",
                "parameters": [
                    {"name": "nni", "in": "query", "type": "string"},
                    {"name": "numero_dossier", "in": "query", "type": "string"},
                    {"name": "nom", "in": "query", "type": "string"},
                    {"name": "wilaya_id", "in": "query", "type": "integer"},
                    {"name": "etablissement_id", "in": "query", "type": "integer"},
                    {"name": "serie_id", "in": "query", "type": "integer"},
                    {"name": "decision", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string", "enum": ["bac", "bepc", "concours"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing search criterion", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/lookup": {
            "get": {
                "tags": ["Results"],
                "summary": "Classifier-driven search entry point",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "required": true},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/{id}": {
            "get": {
                "tags": ["Results"],
                "summary": "Result detail",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/results/{id}/slip": {
            "get": {
                "tags": ["Results"],
                "summary": "Download the result slip as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/results/{id}/share": {
            "post": {
                "tags": ["Results"],
                "summary": "Create a share link for a result",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ShareRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/references/wilayas": {
            "get": {
                "tags": ["References"],
                "summary": "List wilayas",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/references/etablissements": {
            "get": {
                "tags": ["References"],
                "summary": "List establishments",
                "parameters": [
                    {"name": "wilaya_id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/references/series": {
            "get": {
                "tags": ["References"],
                "summary": "List exam series",
                "parameters": [
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/references/bootstrap": {
            "get": {
                "tags": ["References"],
                "summary": "Joined reference fetch for page load",
                "parameters": [
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sessions": {
            "get": {
                "tags": ["References"],
                "summary": "List published sessions",
                "parameters": [
                    {"name": "exam_type", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats/global": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Session-wide aggregates",
                "parameters": [
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats/wilayas/{id}": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Aggregates for one wilaya",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats/etablissements/{id}": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Aggregates for one establishment",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats/top-students": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Student leaderboard",
                "parameters": [
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats/top-schools": {
            "get": {
                "tags": ["Statistics"],
                "summary": "School leaderboard",
                "parameters": [
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Admin"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/logout": {
            "post": {
                "tags": ["Admin"],
                "summary": "Admin logout",
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/admin/sessions": {
            "post": {
                "tags": ["Admin"],
                "summary": "Create an exam session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/sessions/{id}/publish": {
            "patch": {
                "tags": ["Admin"],
                "summary": "Toggle session publication",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PublishSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/uploads": {
            "post": {
                "tags": ["Admin"],
                "summary": "Bulk result upload",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "session_id", "in": "formData", "type": "integer", "required": true},
                    {"name": "file", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/uploads/{task_id}": {
            "get": {
                "tags": ["Admin"],
                "summary": "Upload progress snapshot",
                "parameters": [
                    {"name": "task_id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Admin"],
                "summary": "Stop monitoring an upload task",
                "parameters": [
                    {"name": "task_id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "No content"}
                }
            }
        },
        "/admin/exports/results": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export a result search as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "nni", "in": "query", "type": "string"},
                    {"name": "numero_dossier", "in": "query", "type": "string"},
                    {"name": "nom", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "exam_type", "in": "query", "type": "string"},
                    {"name": "sort", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV document"}
                }
            }
        }
    },
    "definitions": {
        "ShareRequest": {
            "type": "object",
            "required": ["platform"],
            "properties": {
                "platform": {"type": "string", "enum": ["whatsapp", "facebook", "twitter", "telegram", "copy"]},
                "text": {"type": "string"},
                "is_anonymous": {"type": "boolean"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateSessionRequest": {
            "type": "object",
            "required": ["year", "exam_type", "session_name"],
            "properties": {
                "year": {"type": "integer"},
                "exam_type": {"type": "string", "enum": ["bac", "bepc", "concours"]},
                "session_name": {"type": "string"}
            }
        },
        "PublishSessionRequest": {
            "type": "object",
            "required": ["is_published"],
            "properties": {
                "is_published": {"type": "boolean"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
