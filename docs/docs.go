// Package docs registra el documento OpenAPI del servicio para swag/http-swagger.
// Se regenera con: swag init -g cmd/api/main.go -o docs
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
        "/pet": {
            "post": {
                "description": "Agrega la mascota al final del store. No se valida unicidad del id: si se repite, GET devuelve la primera insertada. Responde 202 sin body. El id debe entrar en int32 (mismo rango que GET). Un tag vacío (\"\") se guarda como sin tag y GET lo omite.",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Crear mascota",
                "parameters": [
                    {
                        "description": "Mascota; id y name requeridos, tag opcional",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.createPetRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "accepted"
                    },
                    "400": {
                        "description": "json inválido, faltan id/name o id fuera de rango"
                    }
                }
            }
        },
        "/pet/{id}": {
            "get": {
                "description": "Devuelve la primera mascota (orden de inserción) con ese id. El id viaja también en el header ` + "`" + `x-pet-id` + "`" + `. Los errores no llevan body.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Obtener mascota por id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        },
                        "headers": {
                            "x-pet-id": {
                                "type": "string",
                                "description": "ID de la mascota"
                            }
                        }
                    },
                    "400": {
                        "description": "id ausente o no numérico"
                    },
                    "404": {
                        "description": "pet not found"
                    }
                }
            }
        }
    },
    "definitions": {
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                }
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "name": {
                    "type": "string",
                    "example": "Fufi"
                },
                "tag": {
                    "type": "string",
                    "example": "ABC"
                }
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
	Title:            "Petstore API",
	Description:      "Catálogo en memoria de mascotas: GET /pet/{id} y POST /pet.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
