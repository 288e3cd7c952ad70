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

	"specfusion/catalog"
	"specfusion/database"
	"specfusion/pipeline"
	"specfusion/tokenclass"
)

func main() {
	// Параметры командной строки
	useClassifier := flag.Bool("classifier", false, "Использовать токен-классификатор для обогащения извлечения")
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

	if *useClassifier {
		if config.ClassifierURL == "" {
			log.Println("⚠ CLASSIFIER_URL не установлен, классификатор отключен")
		} else {
			processing.SetClassifier(tokenclass.NewClient(config.ClassifierURL, config.ClassifierModel))
			log.Println("✓ Токен-классификатор включен")
		}
	}

	products, err := processing.LoadRawProducts()
	if err != nil {
		log.Fatalf("❌ Ошибка чтения сырых данных: %v", err)
	}
	log.Printf("📊 Найдено %d предложений для слияния", len(products))

	run, err := db.StartRun("mergespecs")
	if err != nil {
		log.Fatalf("❌ Ошибка регистрации запуска: %v", err)
	}

	log.Println("\n🚀 Запуск слияния спецификаций...")
	startTime := time.Now()

	stats, err := processing.MergeSpecs(products)
	if err != nil {
		db.FailRun(run.RunUUID)
		log.Fatalf("❌ Ошибка слияния спецификаций: %v", err)
	}

	// Дублируем слитые записи в базу для быстрого доступа
	saved, err := storeCatalogProducts(config, db)
	if err != nil {
		log.Printf("⚠ Не удалось сохранить записи в базу: %v", err)
	}

	if err := db.CompleteRun(run.RunUUID, stats.TotalProducts, stats.TotalFailures); err != nil {
		log.Printf("⚠ Не удалось завершить запись о запуске: %v", err)
	}

	duration := time.Since(startTime)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✓ Слияние спецификаций успешно завершено!")
	fmt.Printf("⏱  Время выполнения: %v\n", duration.Round(time.Second))
	fmt.Printf("📊 Предложений: %d, товаров: %d, ошибок: %d\n",
		stats.TotalOffers, stats.TotalProducts, stats.TotalFailures)
	fmt.Printf("💾 Сохранено в базу: %d\n", saved)
	fmt.Println(strings.Repeat("=", 60))
}

// storeCatalogProducts загружает слитые записи из каталога данных в базу
func storeCatalogProducts(config *pipeline.Config, db *database.DB) (int, error) {
	paths, err := filepath.Glob(filepath.Join(config.ProcessedDir, "product_*_catalog.json"))
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, path := range paths {
		product, err := catalog.LoadCatalogProduct(path)
		if err != nil {
			log.Printf("⚠ Не удалось прочитать %s: %v", filepath.Base(path), err)
			continue
		}
		if err := db.SaveCatalogProduct(product); err != nil {
			log.Printf("⚠ Не удалось сохранить товар %s в базу: %v", product.ID, err)
			continue
		}
		saved++
	}
	return saved, nil
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
