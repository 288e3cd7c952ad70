package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"specfusion/database"
	"specfusion/pipeline"
)

func main() {
	// Параметры командной строки
	logFile := flag.String("log", "", "Путь к файлу лога (опционально)")
	flag.Parse()

	// Загружаем .env, если он есть
	if err := godotenv.Load(); err == nil {
		log.Println("✓ Конфигурация загружена из .env")
	}

	setupLogFile(*logFile)

	config, err := pipeline.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}

	db, err := database.NewDBWithConfig(config.DatabasePath, database.DBConfig{
		MaxOpenConns:    config.MaxOpenConns,
		MaxIdleConns:    config.MaxIdleConns,
		ConnMaxLifetime: config.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("❌ Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	processing := pipeline.NewProcessing(config)

	products, err := processing.LoadRawProducts()
	if err != nil {
		log.Fatalf("❌ Ошибка чтения сырых данных: %v", err)
	}
	log.Printf("📊 Найдено %d предложений для обучения маппингов", len(products))

	run, err := db.StartRun("findmappings")
	if err != nil {
		log.Fatalf("❌ Ошибка регистрации запуска: %v", err)
	}

	log.Println("\n🚀 Запуск обучения маппингов меток...")
	startTime := time.Now()

	if err := processing.FindMappings(products); err != nil {
		db.FailRun(run.RunUUID)
		log.Fatalf("❌ Ошибка обучения маппингов: %v", err)
	}

	if err := db.CompleteRun(run.RunUUID, len(products), 0); err != nil {
		log.Printf("⚠ Не удалось завершить запись о запуске: %v", err)
	}

	duration := time.Since(startTime)
	mapped, total := processing.FieldMappings().MappingStats()

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✓ Обучение маппингов успешно завершено!")
	fmt.Printf("⏱  Время выполнения: %v\n", duration.Round(time.Second))
	fmt.Printf("📊 Обработано предложений: %d\n", len(products))
	fmt.Printf("🗂  Сопоставлено ячеек: %d/%d\n", mapped, total)
	fmt.Println(strings.Repeat("=", 60))
}

// setupLogFile настраивает дублирование лога в файл, если указан
func setupLogFile(logFile string) {
	if logFile == "" {
		return
	}
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠ Не удалось создать директорию логов: %v", err)
		return
	}
	fullLogPath := logFile
	if !strings.Contains(fullLogPath, string(os.PathSeparator)) {
		fullLogPath = filepath.Join(logDir, logFile)
	}
	logFileHandle, err := os.OpenFile(fullLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("⚠ Не удалось открыть файл лога: %v, продолжаем без файлового логирования", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, logFileHandle))
	log.Printf("📝 Логирование в файл: %s", fullLogPath)
}
