package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "IFControll Cronologia API",
        "description": "REST API for the vehicle maintenance chronology",
        "version": "3.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "ApiKey": {"type": "apiKey", "name": "X-Api-Key", "in": "header"}
    },
    "tags": [
        {"name": "Records", "description": "Maintenance cases"},
        {"name": "Status", "description": "Case status history"},
        {"name": "Plates", "description": "Per-plate aggregates"},
        {"name": "Export", "description": "Chronology reports"},
        {"name": "Infra", "description": "Liveness"}
    ],
    "paths": {
        "/records": {
            "get": {
                "tags": ["Records"],
                "summary": "List maintenance cases",
                "parameters": [
                    {"name": "placa", "in": "query", "type": "string"},
                    {"name": "concluido", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Records"],
                "summary": "Create a maintenance case",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateManutencaoRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing required field", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/records/{id}": {
            "get": {
                "tags": ["Records"],
                "summary": "Get one case with its history",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "tags": ["Records"],
                "summary": "Partially update a case",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Nothing to update", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "tags": ["Records"],
                "summary": "Delete a case and its history",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/status_update/{id}": {
            "post": {
                "tags": ["Status"],
                "summary": "Append a status note",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStatusUpdateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Missing text", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Case not found", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/plates": {
            "get": {
                "tags": ["Plates"],
                "summary": "List distinct plates with counts and latest activity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/export/records": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the chronology as CSV or PDF",
                "parameters": [
                    {"name": "formato", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "placa", "in": "query", "type": "string"},
                    {"name": "concluido", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/ping": {
            "get": {
                "tags": ["Infra"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "pong", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Manutencao": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "placa": {"type": "string"},
                "situacao": {"type": "string"},
                "data_cadastro": {"type": "string"},
                "quem_informou": {"type": "string"},
                "onde_esta": {"type": "string"},
                "status_texto": {"type": "string"},
                "previsao": {"type": "string"},
                "data_conclusao": {"type": "string"},
                "concluido": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "StatusUpdate": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "manutencao_id": {"type": "integer"},
                "texto": {"type": "string"},
                "autor": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "CreateManutencaoRequest": {
            "type": "object",
            "properties": {
                "placa": {"type": "string"},
                "situacao": {"type": "string"},
                "data_cadastro": {"type": "string"},
                "quem_informou": {"type": "string"},
                "onde_esta": {"type": "string"},
                "status_texto": {"type": "string"},
                "previsao": {"type": "string"},
                "data_conclusao": {"type": "string"},
                "concluido": {"type": "integer"}
            },
            "required": ["placa", "situacao"]
        },
        "CreateStatusUpdateRequest": {
            "type": "object",
            "properties": {
                "texto": {"type": "string"},
                "autor": {"type": "string"}
            },
            "required": ["texto"]
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "status": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
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
