// Package docs holds the OpenAPI description served at /swagger/*.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/google": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in with Google",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.GoogleAuthRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List all slots",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}}}
            }
        },
        "/bookings/available": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List open slots",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}}}
            }
        },
        "/bookings/create": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Create an interview slot",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.CreateSlotRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.CreateSlotResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/bookings/book": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book an open slot",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.BookSlotRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BookSlotResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/bookings/creator/{creatorId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List slots created by a user",
                "parameters": [{"type": "string", "name": "creatorId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}}}
            }
        },
        "/bookings/sme/{smeId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List slots booked by an SME",
                "parameters": [{"type": "string", "name": "smeId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}}}
            }
        },
        "/bookings/resend-email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Resend a booking confirmation",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.ResendRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/bookings/cancel": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Cancel a booking",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.CancelRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CancelResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/bookings/notify-survey": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Email a survey creation confirmation",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.NotifySurveyRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/bookings/test-email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diagnostics"],
                "summary": "Send an HTML test email",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.TestEmailRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiagnosticsResponse"}}}
            }
        },
        "/bookings/simple-test-email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diagnostics"],
                "summary": "Send a plain text test email",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.TestEmailRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiagnosticsResponse"}}}
            }
        },
        "/bookings/debug-email": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diagnostics"],
                "summary": "Verify the mail server and send a debug email",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.TestEmailRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiagnosticsResponse"}}}
            }
        },
        "/surveys": {
            "get": {
                "produces": ["application/json"],
                "tags": ["surveys"],
                "summary": "List surveys",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Envelope"}}}
            }
        },
        "/surveys/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["surveys"],
                "summary": "Generate survey questions for a product idea",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.GenerateSurveyRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Survey"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "handler.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "count": {"type": "integer"},
                "data": {},
                "message": {"type": "string"}
            }
        },
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.GoogleAuthRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "googleId": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "handler.CreateSlotRequest": {
            "type": "object",
            "required": ["creatorId", "date", "endTime", "startTime"],
            "properties": {
                "creatorId": {"type": "string"},
                "date": {"type": "string", "example": "2025-06-01"},
                "startTime": {"type": "string", "example": "09:00"},
                "endTime": {"type": "string", "example": "10:00"},
                "questions": {"type": "array", "items": {"type": "string"}},
                "email": {"type": "string"}
            }
        },
        "handler.BookSlotRequest": {
            "type": "object",
            "required": ["id", "smeId"],
            "properties": {
                "id": {"type": "string"},
                "smeId": {"type": "string"},
                "email": {"type": "string"},
                "questions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.ResendRequest": {
            "type": "object",
            "required": ["bookingId", "email"],
            "properties": {
                "bookingId": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "handler.CancelRequest": {
            "type": "object",
            "required": ["bookingId"],
            "properties": {
                "bookingId": {"type": "string"},
                "notifyParticipants": {"type": "boolean", "default": true}
            }
        },
        "handler.NotifySurveyRequest": {
            "type": "object",
            "required": ["email", "questions"],
            "properties": {
                "email": {"type": "string"},
                "title": {"type": "string"},
                "questions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.TestEmailRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "handler.GenerateSurveyRequest": {
            "type": "object",
            "required": ["productIdea"],
            "properties": {"productIdea": {"type": "string"}}
        },
        "handler.EmailResult": {
            "type": "object",
            "properties": {
                "sent": {"type": "boolean"},
                "messageId": {"type": "string"},
                "email": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.CreateSlotResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/model.TimeSlot"},
                "email": {"$ref": "#/definitions/handler.EmailResult"}
            }
        },
        "handler.BookSlotResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/model.TimeSlot"},
                "emails": {
                    "type": "object",
                    "properties": {
                        "sme": {"$ref": "#/definitions/handler.EmailResult"},
                        "creator": {"$ref": "#/definitions/handler.EmailResult"}
                    }
                }
            }
        },
        "handler.CancelResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"$ref": "#/definitions/model.TimeSlot"},
                "notifications": {
                    "type": "object",
                    "properties": {
                        "sent": {"type": "boolean"},
                        "creator": {"$ref": "#/definitions/handler.EmailResult"},
                        "sme": {"$ref": "#/definitions/handler.EmailResult"}
                    }
                }
            }
        },
        "handler.MessageResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "messageId": {"type": "string"}
            }
        },
        "handler.DiagnosticsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "messageId": {"type": "string"},
                "environment": {"type": "object"},
                "verifyResult": {"type": "object"},
                "sendResult": {"type": "object"}
            }
        },
        "model.TimeSlot": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "creatorId": {"type": "string"},
                "smeId": {"type": "string"},
                "date": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "isBooked": {"type": "boolean"},
                "questions": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "googleId": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.Survey": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "productIdea": {"type": "string"},
                "questions": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Outlaw Survey & Booking API",
	Description:      "Survey generation, SME interview booking and email notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
