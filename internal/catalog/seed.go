package catalog

import (
	"log"

	"studio-backend/internal/models"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func defaultServices() []models.Service {
	return []models.Service{
		{Name: "Dubbing", Description: "Professional voice-over and dubbing services for films, series, and content.", Price: strPtr("₹299/hr"), PriceType: "fixed", Icon: "mic-vocal", ImageURL: "https://images.unsplash.com/photo-1502209877429-d7c6df9eb3f9?crop=entropy&cs=srgb&fm=jpg&q=85"},
		{Name: "Vocal Recording", Description: "Crystal-clear vocal recording in our acoustically treated studio.", PriceType: "project", Icon: "mic", ImageURL: "https://images.unsplash.com/photo-1678356434281-0ef01a3ac02d?crop=entropy&cs=srgb&fm=jpg&q=85"},
		{Name: "Mixing", Description: "Expert audio mixing to achieve the perfect balance and clarity.", PriceType: "project", Icon: "sliders", ImageURL: "https://images.unsplash.com/photo-1760926421866-4ce684285fa6?crop=entropy&cs=srgb&fm=jpg&q=85"},
		{Name: "Mastering", Description: "Final polish and optimization for distribution-ready audio.", PriceType: "project", Icon: "disc", ImageURL: "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?auto=format&fit=crop&q=80"},
		{Name: "SFX & Foley", Description: "Custom sound effects and foley artistry for immersive audio.", PriceType: "project", Icon: "volume-2", ImageURL: "https://images.unsplash.com/photo-1551302175-952301267d19?crop=entropy&cs=srgb&fm=jpg&q=85"},
		{Name: "Music Production", Description: "Full-scale music production from composition to final master.", PriceType: "project", Icon: "music", ImageURL: "https://images.pexels.com/photos/8197289/pexels-photo-8197289.jpeg"},
	}
}

func defaultProjects() []models.Project {
	return []models.Project{
		{Name: "The Midnight Chronicles", Description: "Complete audio post-production for an indie feature film.", WorkType: "Mixing & Mastering", ImageURL: "https://images.unsplash.com/photo-598488035139-bdbb2231ce04?auto=format&fit=crop&q=80", Featured: true},
		{Name: "Echoes of Tomorrow", Description: "Original soundtrack composition and production.", WorkType: "Music Production", ImageURL: "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?auto=format&fit=crop&q=80", Featured: true},
		{Name: "Voice of India", Description: "Hindi dubbing for international documentary series.", WorkType: "Dubbing", ImageURL: "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?auto=format&fit=crop&q=80", Featured: true},
		{Name: "Neon Dreams Album", Description: "Full album production for electronic music artist.", WorkType: "Music Production", ImageURL: "https://images.unsplash.com/photo-1493225255756-d9584f8606e9?auto=format&fit=crop&q=80", Featured: true},
		{Name: "Horror Soundscapes", Description: "Custom SFX and foley for horror game.", WorkType: "SFX & Foley", ImageURL: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?auto=format&fit=crop&q=80", Featured: true},
	}
}

// EnsureSeeded populates the catalog with the default services and projects
// when their tables are empty. Idempotent; called once at startup, never on
// the read path.
func EnsureSeeded(db *gorm.DB) error {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count == 0 {
		services := defaultServices()
		if err := db.Create(&services).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default services", len(services))
	}

	db.Model(&models.Project{}).Count(&count)
	if count == 0 {
		projects := defaultProjects()
		if err := db.Create(&projects).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default projects", len(projects))
	}
	return nil
}
