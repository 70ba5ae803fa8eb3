package domain

// Service is a bookable offering
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
}

// ServiceInput is the data needed to create a service
type ServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
}

// ServicePatch holds optional service fields for partial updates
type ServicePatch struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *float64
}

// ApplyTo copies the non-nil fields onto the service
func (p ServicePatch) ApplyTo(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.DurationMinutes != nil {
		s.DurationMinutes = *p.DurationMinutes
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
}

// DefaultServices returns the catalog seeded on first start
func DefaultServices() []Service {
	return []Service{
		{
			ID:              "service-1",
			Name:            "Initial Consultation",
			Description:     "A comprehensive assessment of your needs and goals",
			DurationMinutes: 30,
			Price:           100,
		},
		{
			ID:              "service-2",
			Name:            "Strategy Session",
			Description:     "Develop a strategic plan for your business",
			DurationMinutes: 60,
			Price:           200,
		},
		{
			ID:              "service-3",
			Name:            "Implementation Support",
			Description:     "Hands-on guidance for executing your plan",
			DurationMinutes: 90,
			Price:           300,
		},
	}
}
