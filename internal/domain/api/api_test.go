package api

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/api-conventions/internal/domain"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
)

func TestAction_Validate(t *testing.T) {
	t.Parallel()

	widgets := &Type{Name: "WidgetsController"}

	tests := []struct {
		name       string
		action     Action
		wantFields []string
	}{
		{
			name: "valid action",
			action: Action{
				Signature:     Signature{Name: "Get", Parameters: []Parameter{{Name: "id", Type: "int"}}},
				DeclaringType: widgets,
			},
		},
		{
			name:       "missing name and type",
			action:     Action{},
			wantFields: []string{"name", "declaring_type"},
		},
		{
			name: "unnamed parameter",
			action: Action{
				Signature:     Signature{Name: "Get", Parameters: []Parameter{{Type: "int"}}},
				DeclaringType: widgets,
			},
			wantFields: []string{"parameters[0].name"},
		},
		{
			name: "variadic not last",
			action: Action{
				Signature: Signature{Name: "Get", Parameters: []Parameter{
					{Name: "ids", Type: "int", Variadic: true},
					{Name: "flag", Type: "bool"},
				}},
				DeclaringType: widgets,
			},
			wantFields: []string{"parameters[0].variadic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.action.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Validate() error = %v, want ErrValidation", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error type = %T, want *domain.ValidationError", err)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("Validate() missing field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestAction_Key(t *testing.T) {
	t.Parallel()

	typ := &Type{Name: "Orders"}

	if got := (&Action{ID: "orders.get", Signature: Signature{Name: "Get"}, DeclaringType: typ}).Key(); got != "orders.get" {
		t.Errorf("Key() = %q, want %q", got, "orders.get")
	}
	if got := (&Action{Signature: Signature{Name: "Get"}, DeclaringType: typ}).Key(); got != "Orders.Get" {
		t.Errorf("Key() = %q, want %q", got, "Orders.Get")
	}
	if got := (&Action{Signature: Signature{Name: "Get"}}).Key(); got != "Get" {
		t.Errorf("Key() = %q, want %q", got, "Get")
	}
}

func TestInheritedChains(t *testing.T) {
	t.Parallel()

	base := &Type{Name: "Base", Annotations: []annotation.Annotation{annotation.ErrorType{Type: "BaseError"}}}
	derived := &Type{Name: "Derived", Base: base}

	if derived.Inherited() == nil {
		t.Fatal("Derived.Inherited() = nil, want base")
	}
	if base.Inherited() != nil {
		t.Errorf("Base.Inherited() = %v, want nil", base.Inherited())
	}

	overridden := &Action{Signature: Signature{Name: "Get"}}
	override := &Action{Signature: Signature{Name: "Get"}, Base: overridden}
	if override.Inherited() == nil {
		t.Error("override.Inherited() = nil, want overridden action")
	}
	if overridden.Inherited() != nil {
		t.Errorf("overridden.Inherited() = %v, want nil", overridden.Inherited())
	}

	if (&Module{Name: "m"}).Inherited() != nil {
		t.Error("Module.Inherited() should always be nil")
	}
}

func TestSignature_String(t *testing.T) {
	t.Parallel()

	sig := Signature{
		Name: "Search",
		Parameters: []Parameter{
			{Name: "query", Type: "string"},
			{Name: "tags", Type: "string", Variadic: true},
		},
		Returns: "Page",
	}
	want := "Search(query string, tags ...string) Page"
	if got := sig.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
