// Package docs holds the swagger description of the HTTP API served under
// /swagger when ENABLE_SWAGGER is set. Keep it in sync with the godoc
// annotations on the controllers (swag init -g cmd/app/main.go).
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response_models.HealthResponse"}}
                }
            }
        },
        "/travel-plan": {
            "post": {
                "description": "Builds a day-by-day itinerary (morning/afternoon/evening) from the trip preferences",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Travel"],
                "summary": "Generate a travel plan",
                "parameters": [
                    {"description": "Trip preferences", "name": "request", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/request_models.TravelPlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response_models.TravelPlanResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/feedback": {
            "post": {
                "description": "Appends the message to the session transcript and returns the model reply",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Feedback"],
                "summary": "Refine the plan through chat",
                "parameters": [
                    {"type": "string", "description": "Session id, used when the body has none", "name": "X-Session-ID", "in": "header"},
                    {"description": "Feedback message", "name": "request", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/request_models.FeedbackInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response_models.FeedbackResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/reset-chat": {
            "post": {
                "description": "Clears the session transcript. The body is optional.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Feedback"],
                "summary": "Reset chat history",
                "parameters": [
                    {"type": "string", "description": "Session id, used when the body has none", "name": "X-Session-ID", "in": "header"},
                    {"description": "Session to reset", "name": "request", "in": "body",
                     "schema": {"$ref": "#/definitions/request_models.ResetChatInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response_models.ResetChatResponse"}}
                }
            }
        }
    },
    "definitions": {
        "request_models.TravelPlanRequest": {
            "type": "object",
            "required": ["budget", "companions", "destination", "end_date", "start_date", "style"],
            "properties": {
                "budget": {"type": "string"},
                "companions": {"type": "string"},
                "destination": {"type": "string"},
                "end_date": {"type": "string"},
                "start_date": {"type": "string"},
                "style": {"type": "array", "items": {"type": "string"}}
            }
        },
        "request_models.FeedbackInput": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "session_id": {"type": "string"}
            }
        },
        "request_models.ResetChatInput": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"}
            }
        },
        "response_models.TravelPlanResponse": {
            "type": "object",
            "properties": {"plan": {"type": "string"}}
        },
        "response_models.FeedbackResponse": {
            "type": "object",
            "properties": {"reply": {"type": "string"}, "session_id": {"type": "string"}}
        },
        "response_models.ResetChatResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "response_models.HealthResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "status": {"type": "string"}}
        },
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "string"},
                "trace_id": {"type": "string"}
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
	Title:            "TripTalk AI API",
	Description:      "Travel plan generation and chat feedback backed by a generative model.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
