package workflow

import (
	"fmt"

	"github.com/jhoicas/CentralKitchen-api/internal/domain"
	"github.com/jhoicas/CentralKitchen-api/pkg/validator"
)

func validate(in interface{}) error {
	if errs := validator.ValidateStruct(in); errs != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, validator.Message(errs))
	}
	return nil
}

func notFound(what, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, what, id)
}
