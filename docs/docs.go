// Package docs registers the OpenAPI document served under /swagger/.
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
        "/api/bookings": {
            "post": {
                "description": "Books the event for the email address. At most one booking per event and email.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book an event",
                "parameters": [
                    {
                        "description": "eventId, slug and email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.BookingRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "success: true", "schema": {"$ref": "#/definitions/domain.BookingResponse"}},
                    "400": {"description": "malformed request", "schema": {"$ref": "#/definitions/domain.BookingResponse"}},
                    "409": {"description": "already booked", "schema": {"$ref": "#/definitions/domain.BookingResponse"}},
                    "500": {"description": "success: false, no error message", "schema": {"$ref": "#/definitions/domain.BookingResponse"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "description": "Returns events newest first with offset pagination.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 12, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListEventsResponse"}},
                    "500": {"description": "details only outside production", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}}
                }
            }
        },
        "/api/events/{slug}": {
            "get": {
                "description": "Validates the slug (lowercase letters/digits separated by single hyphens, at most 120 characters) and returns the matching event.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by slug",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.GetEventResponse"}},
                    "400": {"description": "missing slug", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "404": {"description": "event not found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "422": {"description": "invalid slug", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "details only outside production", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}}
                }
            }
        },
        "/api/events/{slug}/similar": {
            "get": {
                "description": "Returns other events sharing at least one tag with the event. Lookup failures yield an empty list.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events similar to an event",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SimilarEventsResponse"}},
                    "422": {"description": "invalid slug", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.GetEventResponse": {
            "type": "object",
            "properties": {
                "event": {"$ref": "#/definitions/domain.Event"},
                "message": {"type": "string"}
            }
        },
        "controllers.ListEventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "message": {"type": "string"},
                "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
            }
        },
        "controllers.SimilarEventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "message": {"type": "string"}
            }
        },
        "domain.BookingRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "eventId": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "domain.BookingResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "agenda": {"type": "array", "items": {"type": "string"}},
                "audience": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "mode": {"type": "string"},
                "organizer": {"type": "string"},
                "overview": {"type": "string"},
                "slug": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "has_next": {"type": "boolean"}
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
	Title:            "DevEvent API",
	Description:      "Event listing and booking API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
