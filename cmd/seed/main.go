package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"zenrio/internal/database"
	"zenrio/internal/domain"
	"zenrio/internal/repository"
)

// Seeds a local sqlite database with sample content for frontend work.
func main() {
	db, err := database.Connect("zenrio.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM articles")
	db.Exec("DELETE FROM admin_users")

	ctx := context.Background()

	log.Println("Creating master admin...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	adminRepo := repository.NewAdminRepository(db)
	if err := adminRepo.Create(ctx, &domain.AdminUser{
		Username:     "admin",
		PasswordHash: string(hash),
		IsMaster:     true,
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating events...")
	eventRepo := repository.NewEventRepository(db)
	link := "https://meet.example.com/zazen-online"
	seedEvents := []domain.Event{
		{
			Title:       "Zazen de Domingo",
			Date:        "2025-06-01",
			Hour:        "08:00",
			Description: "Prática de meditação sentada aberta a todos os níveis.",
			Address: &domain.Address{
				Street:       "Rua das Laranjeiras",
				Number:       "231",
				Neighborhood: "Laranjeiras",
				City:         "Rio de Janeiro",
				State:        "RJ",
				CEP:          "22240-001",
			},
		},
		{
			Title:       "Introdução ao Zen (online)",
			Date:        "2025-06-07",
			Hour:        "19:30",
			MeetingLink: &link,
			Description: "Encontro introdutório por videoconferência.",
		},
		{
			Title:       "Retiro de Inverno",
			Date:        "2025-07-12",
			Hour:        "06:00",
			Description: "Um dia inteiro de prática intensiva.",
			Address: &domain.Address{
				Street: "Estrada do Sítio",
				Number: "s/n",
				City:   "Cabo Frio",
				State:  "RJ",
			},
		},
	}
	for i := range seedEvents {
		if err := eventRepo.Create(ctx, &seedEvents[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating articles...")
	articleRepo := repository.NewArticleRepository(db)
	seedArticles := []domain.Article{
		{
			Title:       "Meditação para Iniciantes",
			Slug:        "meditacao-para-iniciantes",
			Description: "Por onde começar a praticar.",
			Content:     "## Postura\n\nSente-se com a coluna ereta e respire naturalmente.\n",
		},
		{
			Title:       "O que é Zazen?",
			Slug:        "o-que-e-zazen",
			Description: "Uma introdução à meditação sentada.",
			Content:     "Zazen é a prática central do Zen: apenas sentar.\n",
		},
	}
	for i := range seedArticles {
		if err := articleRepo.Create(ctx, &seedArticles[i]); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
}
