// Package docs registers the OpenAPI document served at /swagger/*any.
// Regenerate with: swag init -g cmd/main.go
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
        "/api/auth/signup": {
            "post": {"tags": ["Auth"], "summary": "Create an account", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.signupReq"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["Auth"], "summary": "Log in", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.loginReq"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Current user", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/auth/logout": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Revoke the current token", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/events": {
            "get": {"tags": ["Events"], "summary": "List events", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Create an event (admin)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/event.EventRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}
        },
        "/api/events/{id}": {
            "get": {"tags": ["Events"], "summary": "Get an event", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Update an event (admin)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/event.EventRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Events"], "summary": "Delete an event and its registrations and announcements (admin)", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/events/{id}/register": {
            "post": {"tags": ["Registrations"], "summary": "Register for an event", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registration.RegisterRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed or event full"}, "404": {"description": "Not Found"}, "409": {"description": "Already registered"}}}
        },
        "/api/events/{id}/registrations": {
            "get": {"tags": ["Registrations"], "summary": "List an event's registrations", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/events/{id}/check-registration": {
            "get": {"tags": ["Registrations"], "summary": "Look up a registration by email", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "email", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/registrations/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Registrations"], "summary": "Update a registration's status", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registration.StatusRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid status"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}
        },
        "/api/events/{id}/announcements": {
            "get": {"tags": ["Announcements"], "summary": "List announcements", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Announcements"], "summary": "Send an announcement (admin)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/announcement.announcementReq"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "404": {"description": "Not Found"}}}
        },
        "/api/events/{id}/download-participants": {
            "get": {"tags": ["Reports"], "summary": "Download participants as xlsx (default) or pdf",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "application/pdf"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "format", "in": "query"}],
                "responses": {"200": {"description": "File", "schema": {"type": "file"}}, "404": {"description": "Not Found"}}}
        },
        "/api/stats": {
            "get": {"tags": ["Stats"], "summary": "Dashboard totals", "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/audit-logs": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Audit"], "summary": "List audit log entries (admin)", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "action", "in": "query"}, {"type": "string", "name": "status", "in": "query"}, {"type": "string", "name": "event_id", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        }
    },
    "definitions": {
        "auth.signupReq": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}},
        "auth.loginReq": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "event.EventRequest": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "date": {"type": "string", "example": "2026-12-01"}, "capacity": {"type": "integer"}}},
        "registration.RegisterRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"}}},
        "registration.StatusRequest": {"type": "object", "properties": {"status": {"type": "string", "enum": ["confirmed", "pending", "rejected"]}}},
        "announcement.announcementReq": {"type": "object", "properties": {"message": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Management API",
	Description:      "Events, registrations with capacity enforcement, announcements and participant exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
