package feedings

import (
	"fmt"
	"strings"
)

// Meal se guarda como código de una letra.
type Meal string

const (
	MealBreakfast Meal = "B"
	MealLunch     Meal = "L"
	MealDinner    Meal = "D"
)

// Meals es el set completo de comidas; su largo define "alimentado hoy".
var Meals = []Meal{MealBreakfast, MealLunch, MealDinner}

// DefaultMeal se usa cuando el cliente no envía meal.
const DefaultMeal = MealBreakfast

func (m Meal) Display() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	default:
		return string(m)
	}
}

func (m Meal) Valid() bool {
	for _, v := range Meals {
		if v == m {
			return true
		}
	}
	return false
}

// ParseMeal acepta el código ("B") o el nombre ("breakfast"). Vacío => DefaultMeal.
func ParseMeal(s string) (Meal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMeal, nil
	}
	for _, m := range Meals {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, m.Display()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: meal must be one of B, L, D", ErrInvalidInput)
}
