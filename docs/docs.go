// Package docs registra el documento OpenAPI servido en /swagger/*.
// Regenerar con: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registrarse",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.signupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.sessionResponse"}},
                    "400": {"description": "invalid json / validación", "schema": {"type": "string"}},
                    "409": {"description": "username already taken", "schema": {"type": "string"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.sessionResponse"}},
                    "401": {"description": "invalid credentials", "schema": {"type": "string"}}
                }
            }
        },
        "/cats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Listar mis gatos",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev, ID de usuario para depuración", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "string", "description": "Bearer token en producción", "name": "Authorization", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/cats.catResponse"}}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Crear gato",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cats.createCatRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/cats.catResponse"}},
                    "400": {"description": "invalid json / validación", "schema": {"type": "string"}}
                }
            }
        },
        "/cats/{catID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Detalle del gato",
                "parameters": [{"type": "string", "name": "catID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.catDetailResponse"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "cat not found", "schema": {"type": "string"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cats"],
                "summary": "Actualizar gato",
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/cats.updateCatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cats.catResponse"}},
                    "400": {"description": "invalid json / validación", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "cat not found", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "tags": ["cats"],
                "summary": "Borrar gato",
                "parameters": [{"type": "string", "name": "catID", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "cat not found", "schema": {"type": "string"}}
                }
            }
        },
        "/cats/{catID}/feedings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feedings"],
                "summary": "Listar comidas del gato",
                "parameters": [{"type": "string", "name": "catID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/feedings.FeedingResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feedings"],
                "summary": "Registrar comida",
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/feedings.addFeedingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/feedings.FeedingResponse"}},
                    "400": {"description": "invalid json / date / meal", "schema": {"type": "string"}}
                }
            }
        },
        "/cats/{catID}/photos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["photos"],
                "summary": "Listar fotos del gato",
                "parameters": [{"type": "string", "name": "catID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/photos.PhotoResponse"}}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "tags": ["photos"],
                "summary": "Subir foto del gato",
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"type": "file", "name": "photo-file", "in": "formData"}
                ],
                "responses": {
                    "303": {"description": "redirect a /cats/{catID}", "schema": {"type": "string"}},
                    "400": {"description": "invalid multipart form", "schema": {"type": "string"}}
                }
            }
        },
        "/cats/{catID}/toys/{toyID}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["toys"],
                "summary": "Asociar juguete a gato",
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"type": "string", "name": "toyID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/toys.ToyResponse"}}},
                    "404": {"description": "cat not found / toy not found", "schema": {"type": "string"}}
                }
            }
        },
        "/toys": {
            "get": {
                "produces": ["application/json"],
                "tags": ["toys"],
                "summary": "Listar juguetes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/toys.ToyResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["toys"],
                "summary": "Crear juguete",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/toys.toyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/toys.ToyResponse"}}
                }
            }
        },
        "/toys/{toyID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["toys"],
                "summary": "Detalle del juguete",
                "parameters": [{"type": "string", "name": "toyID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/toys.ToyResponse"}},
                    "404": {"description": "toy not found", "schema": {"type": "string"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["toys"],
                "summary": "Actualizar juguete",
                "parameters": [
                    {"type": "string", "name": "toyID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/toys.updateToyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/toys.ToyResponse"}}
                }
            },
            "delete": {
                "tags": ["toys"],
                "summary": "Borrar juguete",
                "parameters": [{"type": "string", "name": "toyID", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        }
    },
    "definitions": {
        "users.signupRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "password_confirm": {"type": "string"}
            }
        },
        "users.loginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "users.sessionResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "username": {"type": "string"},
                "token": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "cats.createCatRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "description": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "cats.updateCatRequest": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "description": {"type": "string"},
                "age": {"type": "integer"}
            }
        },
        "cats.catResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "owner_user_id": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "description": {"type": "string"},
                "age": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "cats.catDetailResponse": {
            "type": "object",
            "properties": {
                "cat": {"$ref": "#/definitions/cats.catResponse"},
                "fed_for_today": {"type": "boolean"},
                "feedings": {"type": "array", "items": {"$ref": "#/definitions/feedings.FeedingResponse"}},
                "toys": {"type": "array", "items": {"$ref": "#/definitions/toys.ToyResponse"}},
                "toys_not_on_cat": {"type": "array", "items": {"$ref": "#/definitions/toys.ToyResponse"}},
                "photos": {"type": "array", "items": {"$ref": "#/definitions/photos.PhotoResponse"}}
            }
        },
        "feedings.addFeedingRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "meal": {"type": "string", "enum": ["B", "L", "D"]}
            }
        },
        "feedings.FeedingResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "cat_id": {"type": "string"},
                "date": {"type": "string"},
                "meal": {"type": "string"},
                "meal_display": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "toys.toyRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "toys.updateToyRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "toys.ToyResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "photos.PhotoResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "cat_id": {"type": "string"},
                "url": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cat Collector API",
	Description:      "Gatos, comidas, juguetes y fotos por usuario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
