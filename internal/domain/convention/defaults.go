package convention

import (
	"net/http"

	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/api"
)

// DefaultSourceName names the built-in source returned by DefaultSource.
const DefaultSourceName = "default"

// DefaultSource returns the built-in conventions for common CRUD actions.
// Method names match by prefix, so GetWidget and DeleteOrder are covered.
// A fresh Source is returned on every call.
func DefaultSource() *Source {
	idParam := func() api.Parameter {
		return api.Parameter{
			Name: "id",
			Type: domain.AnyType,
			Annotations: []annotation.Annotation{
				annotation.NameMatch{Behavior: annotation.NameSuffix},
				annotation.TypeMatch{Behavior: annotation.TypeAny},
			},
		}
	}
	modelParam := func() api.Parameter {
		return api.Parameter{
			Name: "model",
			Type: domain.AnyType,
			Annotations: []annotation.Annotation{
				annotation.NameMatch{Behavior: annotation.NameAny},
				annotation.TypeMatch{Behavior: annotation.TypeAny},
			},
		}
	}

	lookup := func(name string) *Definition {
		return prefixDefinition(name, []api.Parameter{idParam()},
			http.StatusOK, http.StatusNotFound)
	}
	create := func(name string) *Definition {
		return prefixDefinition(name, []api.Parameter{modelParam()},
			http.StatusCreated, http.StatusBadRequest)
	}
	update := func(name string) *Definition {
		return prefixDefinition(name, []api.Parameter{idParam(), modelParam()},
			http.StatusNoContent, http.StatusNotFound, http.StatusBadRequest)
	}

	return NewSource(DefaultSourceName,
		lookup("Get"),
		lookup("Find"),
		create("Post"),
		create("Create"),
		update("Put"),
		update("Edit"),
		update("Update"),
		prefixDefinition("Delete", []api.Parameter{idParam()},
			http.StatusOK, http.StatusNotFound, http.StatusBadRequest),
	)
}

func prefixDefinition(name string, params []api.Parameter, codes ...int) *Definition {
	anns := make([]annotation.Annotation, 0, len(codes)+2)
	for _, code := range codes {
		anns = append(anns, annotation.ProducesResponse{StatusCode: code})
	}
	anns = append(anns,
		annotation.ProducesDefaultResponse{},
		annotation.NameMatch{Behavior: annotation.NamePrefix},
	)
	return &Definition{
		Signature:   api.Signature{Name: name, Parameters: params},
		Annotations: anns,
	}
}
