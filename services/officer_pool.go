package services

import (
	"errors"
	"math/rand/v2"

	"trace_app_go/models"
)

// DefaultOfficers is the reference pool of handling officers
var DefaultOfficers = []models.Officer{
	{Name: "SI Karishma Singh", Station: "Lal Bazaar Station", Phone: "9812345670"},
	{Name: "Head Constable Pushpa Singh", Station: "Indiranagar Station", Phone: "9823456781"},
	{Name: "SHO Haseena Malik", Station: "Connaught Place Station", Phone: "9834567892"},
	{Name: "SHO Bulbul Pandey", Station: "Bandra Station", Phone: "9845678903"},
	{Name: "Constable Santosh Sharma", Station: "MG Road Station", Phone: "9856789014"},
	{Name: "Constable Cheetah Chaturvedi", Station: "Rajajinagar Station", Phone: "9867890125"},
	{Name: "SI Srikanth Tiwari", Station: "Yeshwantpur Station", Phone: "9878901236"},
	{Name: "SI Naina Mathur", Station: "Jayanagar Station", Phone: "9889012347"},
}

// OfficerPool is a fixed, read-only set of officers. Safe for concurrent use.
type OfficerPool struct {
	officers []models.Officer
	intn     func(n int) int
}

// NewOfficerPool copies officers into a new pool. intn picks an index in [0, n);
// nil uses math/rand/v2.
func NewOfficerPool(officers []models.Officer, intn func(n int) int) (*OfficerPool, error) {
	if len(officers) == 0 {
		return nil, errors.New("officer pool must not be empty")
	}
	if intn == nil {
		intn = rand.IntN
	}

	pool := make([]models.Officer, len(officers))
	copy(pool, officers)

	return &OfficerPool{officers: pool, intn: intn}, nil
}

// Pick returns one officer chosen uniformly at random. Repeats are allowed.
func (p *OfficerPool) Pick() models.Officer {
	return p.officers[p.intn(len(p.officers))]
}

// Contains reports whether officer is exactly one of the pool entries
func (p *OfficerPool) Contains(officer models.Officer) bool {
	for _, o := range p.officers {
		if o == officer {
			return true
		}
	}
	return false
}
