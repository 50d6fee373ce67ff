// Package storefront holds the Swagger document served under /swagger/.
// Regenerate with: swag init -g internal/storefront/http/router.go -o api/storefront --outputTypes go
package storefront

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "AussieBroadWAN Team",
			"url": "https://github.com/aussiebroadwan/storefront"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/livez": {
			"get": {
				"tags": [
					"Health"
				],
				"summary": "Liveness Check Endpoint",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "status, uptime, version",
						"schema": {
							"$ref": "#/definitions/shopsdk.HealthResponse"
						}
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"tags": [
					"Health"
				],
				"summary": "Readiness Check Endpoint",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "status, uptime, version, checks",
						"schema": {
							"$ref": "#/definitions/shopsdk.HealthResponse"
						}
					},
					"503": {
						"description": "service not ready",
						"schema": {
							"$ref": "#/definitions/shopsdk.HealthResponse"
						}
					}
				}
			}
		},
		"/api/auth/register": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Register",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created user; session cookie set",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_UserData"
						}
					},
					"400": {
						"description": "Validation failed or email already exists",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.RegisterRequest"
						}
					}
				]
			}
		},
		"/api/auth/login": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Login",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Signed-in user; session cookie set",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_UserData"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"401": {
						"description": "Invalid email or password",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.LoginRequest"
						}
					}
				]
			}
		},
		"/api/auth/firebase-login": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Federated login",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Signed-in user; one hour session cookie set",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_UserData"
						}
					},
					"400": {
						"description": "Missing token or email already registered",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"401": {
						"description": "Invalid Firebase token",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.FirebaseLoginRequest"
						}
					}
				]
			}
		},
		"/api/auth/logout": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Logout",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Logged out successfully",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					}
				}
			}
		},
		"/api/auth/forgot-password": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Forgot password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Password reset link sent to your email",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					},
					"404": {
						"description": "User not found or is a social media user",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"503": {
						"description": "Mail queue full",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.ForgotPasswordRequest"
						}
					}
				]
			}
		},
		"/api/auth/reset-password": {
			"post": {
				"tags": [
					"Auth"
				],
				"summary": "Reset password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Password reset successfully",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					},
					"400": {
						"description": "Password too short",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"401": {
						"description": "Invalid or expired token",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "User not found or is a social media user",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.ResetPasswordRequest"
						}
					}
				]
			}
		},
		"/api/products": {
			"get": {
				"tags": [
					"Products"
				],
				"summary": "List products",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "One page of products",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_ProductPage"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Category filter",
						"name": "category",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size",
						"name": "limit",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"Products"
				],
				"summary": "Create a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created product",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_ProductData"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"401": {
						"description": "Missing token or not an admin",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.ProductRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/products/{id}": {
			"get": {
				"tags": [
					"Products"
				],
				"summary": "Get a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "The product",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_ProductData"
						}
					},
					"400": {
						"description": "ID must be a valid number",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Product id",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"Products"
				],
				"summary": "Update a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Updated product",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_ProductData"
						}
					},
					"400": {
						"description": "Validation failed",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"401": {
						"description": "Missing token or not an admin",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json",
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Product id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.ProductRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"Products"
				],
				"summary": "Delete a product",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Product deleted successfully",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					},
					"401": {
						"description": "Missing token or not an admin",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Product id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/cart": {
			"get": {
				"tags": [
					"Cart"
				],
				"summary": "List cart items",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Items with their products",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_CartData"
						}
					},
					"401": {
						"description": "Missing or invalid token",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Cart"
				],
				"summary": "Add to cart",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Existing line incremented",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_CartItemData"
						}
					},
					"201": {
						"description": "New line created",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_CartItemData"
						}
					},
					"400": {
						"description": "Quantity must be between 1 and 1000",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.AddToCartRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"Cart"
				],
				"summary": "Empty the cart",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Cart cleared",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/cart/{productId}": {
			"put": {
				"tags": [
					"Cart"
				],
				"summary": "Set a cart line's quantity",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Updated line",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_CartItemData"
						}
					},
					"400": {
						"description": "Quantity must be between 1 and 1000",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "Cart item not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Product id",
						"name": "productId",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.UpdateCartRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"Cart"
				],
				"summary": "Remove a cart line",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Removed from cart",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					},
					"404": {
						"description": "Cart item not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Product id",
						"name": "productId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/favorites": {
			"get": {
				"tags": [
					"Favorites"
				],
				"summary": "List favorites",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Favorites with their products",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_FavoritesData"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"Favorites"
				],
				"summary": "Add a favorite",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created favorite",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_FavoriteData"
						}
					},
					"400": {
						"description": "Product already in favorites",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "Product not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.AddFavoriteRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/favorites/{productId}": {
			"delete": {
				"tags": [
					"Favorites"
				],
				"summary": "Remove a favorite",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Removed from favorites",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					},
					"404": {
						"description": "Favorite not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Product id",
						"name": "productId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/orders": {
			"post": {
				"tags": [
					"Orders"
				],
				"summary": "Place an order",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created order",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_OrderData"
						}
					},
					"400": {
						"description": "Order items are required",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					},
					"404": {
						"description": "Product with ID n not found",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.CreateOrderRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"Orders"
				],
				"summary": "List all orders",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "One page of orders with their customers",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_OrderPage"
						}
					},
					"401": {
						"description": "Missing token or not an admin",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 10)",
						"name": "limit",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/orders/my-orders": {
			"get": {
				"tags": [
					"Orders"
				],
				"summary": "List my orders",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "The caller's orders, newest first",
						"schema": {
							"$ref": "#/definitions/shopsdk.DataResponse-shopsdk_OrdersData"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/contact": {
			"post": {
				"tags": [
					"Contact"
				],
				"summary": "Send a contact message",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Message sent successfully",
						"schema": {
							"$ref": "#/definitions/shopsdk.MessageResponse"
						}
					},
					"400": {
						"description": "All fields are required",
						"schema": {
							"$ref": "#/definitions/shopsdk.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/shopsdk.ContactRequest"
						}
					}
				]
			}
		}
	},
	"definitions": {
		"shopsdk.APIError": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "fail"
				},
				"message": {
					"type": "string"
				},
				"code": {
					"type": "integer"
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"shopsdk.AddFavoriteRequest": {
			"type": "object",
			"properties": {
				"productId": {
					"type": "integer"
				}
			},
			"required": [
				"productId"
			]
		},
		"shopsdk.AddToCartRequest": {
			"type": "object",
			"properties": {
				"productId": {
					"type": "integer"
				},
				"quantity": {
					"type": "integer"
				}
			},
			"required": [
				"productId"
			]
		},
		"shopsdk.CartData": {
			"type": "object",
			"properties": {
				"cartItems": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shopsdk.CartItem"
					}
				}
			}
		},
		"shopsdk.CartItem": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"productId": {
					"type": "integer"
				},
				"quantity": {
					"type": "integer"
				},
				"product": {
					"$ref": "#/definitions/shopsdk.Product"
				}
			}
		},
		"shopsdk.CartItemData": {
			"type": "object",
			"properties": {
				"cartItem": {
					"$ref": "#/definitions/shopsdk.CartItem"
				}
			}
		},
		"shopsdk.ContactRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"subject": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			},
			"required": [
				"name",
				"email",
				"subject",
				"message"
			]
		},
		"shopsdk.CreateOrderRequest": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shopsdk.OrderLine"
					}
				},
				"customerInfo": {
					"type": "object"
				}
			},
			"required": [
				"items"
			]
		},
		"shopsdk.DataResponse-shopsdk_CartData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.CartData"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_CartItemData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.CartItemData"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_FavoriteData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.FavoriteData"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_FavoritesData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.FavoritesData"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_OrderData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.OrderData"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_OrderPage": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.OrderPage"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_OrdersData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.OrdersData"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_ProductData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.ProductData"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_ProductPage": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.ProductPage"
				}
			}
		},
		"shopsdk.DataResponse-shopsdk_UserData": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"data": {
					"$ref": "#/definitions/shopsdk.UserData"
				}
			}
		},
		"shopsdk.Favorite": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"productId": {
					"type": "integer"
				},
				"product": {
					"$ref": "#/definitions/shopsdk.Product"
				}
			}
		},
		"shopsdk.FavoriteData": {
			"type": "object",
			"properties": {
				"favorite": {
					"$ref": "#/definitions/shopsdk.Favorite"
				}
			}
		},
		"shopsdk.FavoritesData": {
			"type": "object",
			"properties": {
				"favorites": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shopsdk.Favorite"
					}
				}
			}
		},
		"shopsdk.FirebaseLoginRequest": {
			"type": "object",
			"properties": {
				"idToken": {
					"type": "string"
				}
			},
			"required": [
				"idToken"
			]
		},
		"shopsdk.ForgotPasswordRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				}
			},
			"required": [
				"email"
			]
		},
		"shopsdk.HealthChecks": {
			"type": "object",
			"properties": {
				"database": {
					"type": "string"
				},
				"signer": {
					"type": "string"
				},
				"federated": {
					"type": "string"
				},
				"mail": {
					"type": "string"
				}
			}
		},
		"shopsdk.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"uptime": {
					"type": "string"
				},
				"version": {
					"type": "string"
				},
				"checks": {
					"$ref": "#/definitions/shopsdk.HealthChecks"
				}
			}
		},
		"shopsdk.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"shopsdk.MessageResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "success"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"shopsdk.Order": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"totalAmount": {
					"type": "number"
				},
				"status": {
					"type": "string",
					"enum": [
						"pending",
						"completed",
						"cancelled"
					]
				},
				"customerInfo": {
					"type": "object"
				},
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shopsdk.OrderItem"
					}
				},
				"user": {
					"$ref": "#/definitions/shopsdk.OrderCustomer"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"shopsdk.OrderCustomer": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"email": {
					"type": "string"
				}
			}
		},
		"shopsdk.OrderData": {
			"type": "object",
			"properties": {
				"order": {
					"$ref": "#/definitions/shopsdk.Order"
				}
			}
		},
		"shopsdk.OrderItem": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"productId": {
					"type": "integer"
				},
				"quantity": {
					"type": "integer"
				},
				"price": {
					"type": "number"
				},
				"product": {
					"$ref": "#/definitions/shopsdk.Product"
				}
			}
		},
		"shopsdk.OrderLine": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"quantity": {
					"type": "integer"
				}
			}
		},
		"shopsdk.OrderPage": {
			"type": "object",
			"properties": {
				"orders": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shopsdk.Order"
					}
				},
				"totalOrders": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				},
				"currentPage": {
					"type": "integer"
				}
			}
		},
		"shopsdk.OrdersData": {
			"type": "object",
			"properties": {
				"orders": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shopsdk.Order"
					}
				}
			}
		},
		"shopsdk.Product": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"category": {
					"type": "string",
					"enum": [
						"Air Conditioning",
						"Plumbing",
						"Fire Fighting"
					]
				},
				"image": {
					"type": "string",
					"x-nullable": true
				},
				"stock": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"shopsdk.ProductData": {
			"type": "object",
			"properties": {
				"product": {
					"$ref": "#/definitions/shopsdk.Product"
				}
			}
		},
		"shopsdk.ProductPage": {
			"type": "object",
			"properties": {
				"products": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/shopsdk.Product"
					}
				},
				"totalProducts": {
					"type": "integer"
				},
				"totalPages": {
					"type": "integer"
				},
				"currentPage": {
					"type": "integer"
				}
			}
		},
		"shopsdk.ProductRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"category": {
					"type": "string"
				},
				"stock": {
					"type": "integer"
				}
			}
		},
		"shopsdk.RegisterRequest": {
			"type": "object",
			"properties": {
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				}
			},
			"required": [
				"firstName",
				"lastName",
				"email",
				"password"
			]
		},
		"shopsdk.ResetPasswordRequest": {
			"type": "object",
			"properties": {
				"token": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"password": {
					"type": "string",
					"minLength": 6
				}
			},
			"required": [
				"token",
				"id",
				"password"
			]
		},
		"shopsdk.UpdateCartRequest": {
			"type": "object",
			"properties": {
				"quantity": {
					"type": "integer"
				}
			},
			"required": [
				"quantity"
			]
		},
		"shopsdk.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"avatar": {
					"type": "string"
				}
			}
		},
		"shopsdk.UserData": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/shopsdk.User"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Session token. Format: \"Bearer {token}\".",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Storefront API",
	Description:      "Identity, catalog, cart, favorites and orders for the storefront.\n\nSessions are HS256 bearer tokens carried in the \"token\" cookie or an Authorization header.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
