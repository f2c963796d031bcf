//go:build tools

package tools

// Fixa a CLI do swag usada para regenerar docs/swagger.json.
import _ "github.com/swaggo/swag"
