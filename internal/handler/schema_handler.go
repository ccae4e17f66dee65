package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Static JSON Schema documents for the public resources

var brandSchema = echo.Map{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"title":   "brand",
	"type":    "object",
	"properties": echo.Map{
		"ID":          echo.Map{"type": "integer"},
		"slug":        echo.Map{"type": "string"},
		"name":        echo.Map{"type": "string"},
		"description": echo.Map{"type": "string"},
		"taxonomy":    echo.Map{"type": "string"},
		"count":       echo.Map{"type": "integer"},
		"meta":        echo.Map{"type": "object"},
	},
}

var productSchema = echo.Map{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"title":   "product",
	"type":    "object",
	"properties": echo.Map{
		"id":                echo.Map{"type": "integer"},
		"kind":              echo.Map{"type": "string", "enum": []string{"grouped", "simple"}},
		"status":            echo.Map{"type": "string"},
		"sku":               echo.Map{"type": "string"},
		"name":              echo.Map{"type": "string"},
		"description":       echo.Map{"type": "string"},
		"short_description": echo.Map{"type": "string"},
		"regular_price":     echo.Map{"type": "string"},
		"parent_id":         echo.Map{"type": "integer"},
		"owner_id":          echo.Map{"type": "integer"},
		"image":             echo.Map{"type": []string{"string", "null"}},
		"gallery":           echo.Map{"type": "array", "items": echo.Map{"type": "string"}},
		"attributes":        echo.Map{"type": "object"},
		"terms":             echo.Map{"type": "object"},
	},
}

var dealerSchema = echo.Map{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"title":   "dealer",
	"type":    "object",
	"properties": echo.Map{
		"id":           echo.Map{"type": "integer"},
		"login":        echo.Map{"type": "string"},
		"email":        echo.Map{"type": "string"},
		"display_name": echo.Map{"type": "string"},
		"region":       echo.Map{"type": "string"},
		"city":         echo.Map{"type": "string"},
		"meta":         echo.Map{"type": "object"},
	},
}

// BrandSchema handles brand schema introspection
func BrandSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, brandSchema)
}

// ProductSchema handles product schema introspection
func ProductSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, productSchema)
}

// DealerSchema handles dealer schema introspection
func DealerSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, dealerSchema)
}
