package handler

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"litmark/internal/middleware"
)

// Declarative body schemas attached per route by the validation middleware.
// Handlers re-decode the body into typed request structs afterwards.
var (
	RegisterSchema = middleware.Schema{
		validation.Key("username", validation.Required, validation.Length(1, 255)),
		validation.Key("email", validation.Required, is.Email),
		validation.Key("password", validation.Required, validation.Length(8, 72)),
	}

	LoginSchema = middleware.Schema{
		validation.Key("email", validation.Required, is.Email),
		validation.Key("password", validation.Required),
	}

	RefreshSchema = middleware.Schema{
		validation.Key("refreshToken", validation.Required),
	}

	CreateFolderSchema = middleware.Schema{
		validation.Key("name", validation.Required, validation.Length(1, 255)),
		validation.Key("folder_id", middleware.PositiveInteger).Optional(),
		validation.Key("image_id", middleware.PositiveInteger).Optional(),
	}

	UpdateFolderSchema = middleware.Schema{
		validation.Key("name", validation.Length(1, 255)).Optional(),
		validation.Key("image_id", middleware.PositiveInteger).Optional(),
	}

	CreateChipSchema = middleware.Schema{
		validation.Key("name", validation.Required, validation.Length(1, 255)),
		validation.Key("url", is.URL).Optional(),
		validation.Key("folder_id", validation.Required, middleware.PositiveInteger),
		validation.Key("image_id", middleware.PositiveInteger).Optional(),
	}

	UpdateChipSchema = middleware.Schema{
		validation.Key("name", validation.Length(1, 255)).Optional(),
		validation.Key("url", is.URL).Optional(),
		validation.Key("folder_id", middleware.PositiveInteger).Optional(),
		validation.Key("image_id", middleware.PositiveInteger).Optional(),
	}

	UpdateUserSchema = middleware.Schema{
		validation.Key("username", validation.Length(1, 255)).Optional(),
		validation.Key("image_id", middleware.PositiveInteger).Optional(),
	}
)
