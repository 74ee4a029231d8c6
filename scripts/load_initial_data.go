package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trainit-backend/internal/auth"
	"trainit-backend/internal/config"
	"trainit-backend/internal/database"
	"trainit-backend/internal/database/models"
	"trainit-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures mirroring the tenant hierarchy
type OrganizationData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Users       []UserData `yaml:"users"`
}

type UserData struct {
	Email    string       `yaml:"email"`
	Password string       `yaml:"password,omitempty"`
	Animals  []AnimalData `yaml:"animals,omitempty"`
}

type AnimalData struct {
	Name     string     `yaml:"name"`
	Species  string     `yaml:"species"`
	Sex      string     `yaml:"sex"`
	Age      *int       `yaml:"age,omitempty"`
	Location string     `yaml:"location,omitempty"`
	Plans    []PlanData `yaml:"plans,omitempty"`
}

type PlanData struct {
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description,omitempty"`
	CueDescription string     `yaml:"cue_description,omitempty"`
	CueVideoURL    string     `yaml:"cue_video_url,omitempty"`
	Criteria       string     `yaml:"criteria,omitempty"`
	Category       string     `yaml:"category,omitempty"`
	StartedDate    string     `yaml:"started_date,omitempty"`
	Steps          []StepData `yaml:"steps"`
}

type StepData struct {
	Name              string `yaml:"name"`
	Description       string `yaml:"description,omitempty"`
	Order             int    `yaml:"order"`
	EstimatedSessions *int   `yaml:"estimated_sessions,omitempty"`
	IsComplete        bool   `yaml:"is_complete,omitempty"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

// seedCounts tracks how many rows were created per table
type seedCounts struct {
	organizations, users, animals, plans int
}

type seeder struct {
	orgRepo    *repository.OrganizationRepository
	userRepo   *repository.UserRepository
	animalRepo *repository.AnimalRepository
	planRepo   *repository.TrainingPlanRepository
	counts     seedCounts
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL and "record not found" logs during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	s := &seeder{
		orgRepo:    repository.NewOrganizationRepository(db),
		userRepo:   repository.NewUserRepository(db),
		animalRepo: repository.NewAnimalRepository(db),
		planRepo:   repository.NewTrainingPlanRepository(db),
	}

	for _, orgData := range organizations {
		if err := s.seedOrganization(orgData); err != nil {
			return fmt.Errorf("failed to seed organization %s: %w", orgData.Name, err)
		}
	}

	log.Printf("📋 Organizations: %d created, %d in files", s.counts.organizations, len(organizations))
	log.Printf("📋 Users: %d created", s.counts.users)
	log.Printf("📋 Animals: %d created", s.counts.animals)
	log.Printf("📋 Training plans: %d created", s.counts.plans)
	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && (strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func (s *seeder) seedOrganization(orgData OrganizationData) error {
	org, err := s.orgRepo.GetByName(orgData.Name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		org = &models.Organization{Name: orgData.Name, Description: optional(orgData.Description)}
		if err := s.orgRepo.Create(org); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}
		s.counts.organizations++
	} else if err != nil {
		return fmt.Errorf("failed to query organization: %w", err)
	}

	for _, userData := range orgData.Users {
		user, err := s.seedUser(org, userData)
		if err != nil {
			return fmt.Errorf("user %s: %w", userData.Email, err)
		}
		for _, animalData := range userData.Animals {
			if err := s.seedAnimal(user, animalData); err != nil {
				return fmt.Errorf("animal %s: %w", animalData.Name, err)
			}
		}
	}
	return nil
}

func (s *seeder) seedUser(org *models.Organization, userData UserData) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(userData.Email)
	if err == nil {
		if user.OrganizationID != org.ID {
			log.Printf("⚠️  %s already belongs to another organization, seeding their animals there", userData.Email)
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	password := userData.Password
	if password == "" {
		password = uuid.NewString()
		log.Printf("🔑 Generated password for %s: %s", userData.Email, password)
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user = &models.User{Email: userData.Email, HashedPassword: hashed, OrganizationID: org.ID}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.counts.users++
	return user, nil
}

func (s *seeder) seedAnimal(owner *models.User, animalData AnimalData) error {
	sex := models.AnimalSex(animalData.Sex)
	if !sex.IsValid() {
		return fmt.Errorf("invalid sex %q", animalData.Sex)
	}

	existing, err := s.animalRepo.GetByOrganizationID(owner.OrganizationID, -1, 0)
	if err != nil {
		return fmt.Errorf("failed to query animals: %w", err)
	}

	var animal *models.Animal
	for i := range existing {
		if existing[i].Name == animalData.Name && existing[i].OwnerID == owner.ID {
			animal = &existing[i]
			break
		}
	}
	if animal == nil {
		animal = &models.Animal{
			Name:           animalData.Name,
			Species:        animalData.Species,
			Sex:            sex,
			Age:            animalData.Age,
			Location:       optional(animalData.Location),
			OwnerID:        owner.ID,
			OrganizationID: owner.OrganizationID,
		}
		if err := s.animalRepo.Create(animal); err != nil {
			return fmt.Errorf("failed to create animal: %w", err)
		}
		s.counts.animals++
	}

	plans, err := s.planRepo.GetByAnimalID(animal.ID)
	if err != nil {
		return fmt.Errorf("failed to query plans: %w", err)
	}
	known := make(map[string]bool, len(plans))
	for _, p := range plans {
		known[p.Name] = true
	}

	for _, planData := range animalData.Plans {
		if known[planData.Name] {
			continue
		}
		plan, err := buildPlan(animal.ID, planData)
		if err != nil {
			return fmt.Errorf("plan %s: %w", planData.Name, err)
		}
		if err := s.planRepo.Create(plan); err != nil {
			return fmt.Errorf("failed to create plan %s: %w", planData.Name, err)
		}
		s.counts.plans++
	}
	return nil
}

func buildPlan(animalID uint, planData PlanData) (*models.TrainingPlan, error) {
	plan := &models.TrainingPlan{
		Name:           planData.Name,
		Description:    optional(planData.Description),
		CueDescription: optional(planData.CueDescription),
		CueVideoURL:    optional(planData.CueVideoURL),
		Criteria:       optional(planData.Criteria),
		Category:       optional(planData.Category),
		AnimalID:       animalID,
		Steps:          make([]models.PlanStep, len(planData.Steps)),
	}

	if planData.StartedDate != "" {
		started, err := models.ParseDate(planData.StartedDate)
		if err != nil {
			return nil, err
		}
		plan.StartedDate = &started
	}

	for i, step := range planData.Steps {
		plan.Steps[i] = models.PlanStep{
			Name:              step.Name,
			Description:       optional(step.Description),
			Order:             step.Order,
			EstimatedSessions: step.EstimatedSessions,
		}
		plan.Steps[i].SetCompleted(step.IsComplete)
	}
	return plan, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
