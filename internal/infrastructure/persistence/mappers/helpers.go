// Package mappers converts between domain aggregates and gorm models.
// Mappers never touch the database; repositories own query concerns.
package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"kontor/internal/domain/department"
)

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func fromJSON[T any](raw datatypes.JSON, out *T) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}
	return nil
}

func departmentsToJSON(departments []department.Department) datatypes.JSON {
	if len(departments) == 0 {
		return nil
	}
	return toJSON(departments)
}

func departmentsFromJSON(raw datatypes.JSON) ([]department.Department, error) {
	var departments []department.Department
	if err := fromJSON(raw, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}
