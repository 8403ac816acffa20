package repository

import "career-compass/internal/domain"

// Fixture data loaded once at startup. Job counts are monthly openings
// observed for each career track over 2023.
var seedMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var seedJobCounts = map[string][]int{
	"Data Science":       {110, 125, 140, 152, 158, 170, 185, 190, 205, 220, 235, 245},
	"UX Design":          {95, 100, 108, 115, 122, 130, 135, 142, 148, 155, 160, 168},
	"Product Management": {80, 88, 95, 102, 110, 115, 122, 128, 135, 140, 148, 155},
}

var seedCareers = []string{"Data Science", "UX Design", "Product Management"}

// Seed populates the store with demo market trends and learning
// resources. Call it once, between NewMemStore and serving traffic.
func Seed(s *MemStore) {
	for i, month := range seedMonths {
		for _, career := range seedCareers {
			s.CreateMarketTrend(domain.InsertMarketTrend{
				CareerTitle: career,
				Month:       month,
				Year:        2023,
				JobCount:    seedJobCounts[career][i],
			})
		}
	}

	s.CreateResource(domain.InsertResource{
		Title:       "Python for Data Science",
		Type:        "course",
		Description: "Comprehensive course covering Python fundamentals for data analysis",
		Link:        "https://example.com/python-course",
		SkillID:     1,
	})
	s.CreateResource(domain.InsertResource{
		Title:       "SQL Fundamentals",
		Type:        "course",
		Description: "Learn database management and SQL queries for data analysis",
		Link:        "https://example.com/sql-course",
		SkillID:     2,
	})
}
