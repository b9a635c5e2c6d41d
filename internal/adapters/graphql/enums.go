package graphql

import (
	"errors"
	"fmt"

	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/employee"
	"github.com/ogurasousui/codex-graphql-clean-arch/internal/core/project"
)

var errUnknownEnum = errors.New("unknown enum value")

var employeeStatusNames = map[employee.Status]string{
	employee.StatusNone:             "NONE",
	employee.StatusWorking:          "WORKING",
	employee.StatusEmergencyService: "EMERGENCY_SERVICE",
	employee.StatusVacation:         "VACATION",
	employee.StatusIllness:          "ILLNESS",
}

var projectStatusNames = map[project.Status]string{
	project.StatusNotStarted: "NOT_STARTED",
	project.StatusInProgress: "IN_PROGRESS",
	project.StatusCompleted:  "COMPLETED",
}

func employeeStatusFromEnum(name *string) (*employee.Status, error) {
	if name == nil {
		return nil, nil
	}
	for status, enum := range employeeStatusNames {
		if enum == *name {
			s := status
			return &s, nil
		}
	}
	return nil, fmt.Errorf("employee status %q: %w", *name, errUnknownEnum)
}

func employeeStatusToEnum(status employee.Status) string {
	if name, ok := employeeStatusNames[status]; ok {
		return name
	}
	return employeeStatusNames[employee.StatusNone]
}

func projectStatusFromEnum(name *string) (*project.Status, error) {
	if name == nil {
		return nil, nil
	}
	for status, enum := range projectStatusNames {
		if enum == *name {
			s := status
			return &s, nil
		}
	}
	return nil, fmt.Errorf("project status %q: %w", *name, errUnknownEnum)
}

func projectStatusToEnum(status project.Status) string {
	if name, ok := projectStatusNames[status]; ok {
		return name
	}
	return projectStatusNames[project.StatusNotStarted]
}
