// Package pages holds the fixed content of the informational pages.
package pages

import "github.com/alexraskin/foodgram-technologies/internal/models"

const (
	TechnologiesTemplate = "technologies.html"

	technologiesTitle       = "О проекте"
	technologiesDescription = "Фудграм - Технологии"
	technologiesHeading     = "Технологии"
	technologiesSubheading  = "Технологии, которые применены в этом проекте:"
)

var technologiesBadges = [...]models.Badge{
	{
		Src: "https://img.shields.io/badge/python-3670A0?style=for-the-badge&logo=python&logoColor=ffdd54",
		Alt: "Python",
	},
	{
		Src: "https://img.shields.io/badge/django-%230c4b34?style=for-the-badge&logo=django&logoColor=white",
		Alt: "Django",
	},
	{
		Src: "https://img.shields.io/badge/framework-%23a30000?style=for-the-badge&logo=django&logoColor=white&label=rest&labelColor=%232c2c2c",
		Alt: "Django REST Framework",
	},
	{
		Src: "https://img.shields.io/badge/Djoser-092E20?style=for-the-badge&logo=django&logoColor=whiteDjoser",
		Alt: "Djoser",
	},
	{
		Src: "https://img.shields.io/badge/PostgreSQL-336690?style=for-the-badge&logo=postgresql&logoColor=white&logoSize=auto",
		Alt: "Postgres",
	},
	{
		Src: "https://img.shields.io/badge/nginx-%23009639.svg?style=for-the-badge&logo=nginx&logoColor=white",
		Alt: "Nginx",
	},
	{
		Src: "https://img.shields.io/badge/docker-%230db7ed.svg?style=for-the-badge&logo=docker&logoColor=white",
		Alt: "Docker",
	},
	{
		Src: "https://img.shields.io/badge/github%20actions-%232671E5.svg?style=for-the-badge&logo=githubactions&logoColor=white",
		Alt: "GitHub Actions",
	},
}

// Technologies returns the content of the "Technologies" page. Each call
// returns its own copy of the badge list.
func Technologies() models.TechnologiesPage {
	badges := make([]models.Badge, len(technologiesBadges))
	copy(badges, technologiesBadges[:])

	return models.TechnologiesPage{
		Meta: models.PageMeta{
			Lang:        "ru",
			Title:       technologiesTitle,
			Description: technologiesDescription,
			OGTitle:     technologiesTitle,
		},
		Heading:    technologiesHeading,
		Subheading: technologiesSubheading,
		Badges:     badges,
	}
}
