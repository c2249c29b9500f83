package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/golonikum/attractions-app/internal/handler"
	"github.com/golonikum/attractions-app/internal/repository"
	"github.com/golonikum/attractions-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

func env(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Локальная разработка: подхватываем .env, если он есть
	godotenv.Load()

	// Читаем параметры подключения к БД из переменных окружения
	dbHost := env("DB_HOST", "localhost")
	dbPort := env("DB_PORT", "5432")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}

	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			content, readErr := os.ReadFile(file)
			if readErr != nil {
				log.Printf("Не удалось прочитать миграцию %s: %v", file, readErr)
				continue
			}
			tx, txErr := db.Begin()
			if txErr != nil {
				log.Printf("Ошибка при инициации транзакции миграции: %v", txErr)
				continue
			}
			if _, execErr := tx.Exec(string(content)); execErr != nil {
				tx.Rollback()
				log.Printf("Миграция %s завершилась ошибкой: %v", file, execErr)
			} else {
				tx.Commit()
				log.Printf("Миграция %s применена.", file)
			}
		}
	}

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	attractionRepo := repository.NewAttractionRepository(db)

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, env("JWT_SECRET", "fallback-secret"))
	groupService := service.NewGroupService(groupRepo)
	attractionService := service.NewAttractionService(attractionRepo, groupRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, groupService, attractionService)
	router := gin.Default()
	h.RegisterRoutes(router)

	// Запускаем HTTP-сервер
	port := env("API_PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
