package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the user API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>user-service — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// OpenAPI document for the user CRUD endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "user-service", "version": "1.0.0" },
  "components": {
    "schemas": {
      "UserInput": {
        "type": "object",
        "required": ["name", "address", "phoneNumber", "companyName"],
        "properties": {
          "name": { "type": "string", "maxLength": 50 },
          "address": { "type": "string", "maxLength": 200 },
          "phoneNumber": { "type": "string", "pattern": "^[0-9]{10}$" },
          "companyName": { "type": "string", "maxLength": 100 }
        }
      }
    }
  },
  "paths": {
    "/api/users": {
      "get": { "summary": "List all users", "responses": { "200": { "description": "array of users" } } },
      "post": {
        "summary": "Create a user",
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/UserInput" } } } },
        "responses": { "201": { "description": "created user" }, "400": { "description": "validation errors" } }
      }
    },
    "/api/users/{id}": {
      "get": { "summary": "Get a user by id", "responses": { "200": { "description": "one user" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } },
      "put": {
        "summary": "Update a user (full or partial)",
        "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/UserInput" } } } },
        "responses": { "200": { "description": "updated user" }, "400": { "description": "validation errors or invalid id" }, "404": { "description": "not found" } }
      },
      "delete": { "summary": "Delete a user", "responses": { "200": { "description": "confirmation" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } }
    },
    "/api/health": { "get": { "summary": "Health check", "responses": { "200": { "description": "status and uptime" } } } }
  }
}`
