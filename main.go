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
	"specfusion/tokenclass"
)

// main запускает полный конвейер: обучение маппингов меток, слияние
// спецификаций магазинов и оценку против эталона. Отдельные этапы
// доступны как самостоятельные утилиты в cmd/.
func main() {
	// Параметры командной строки
	useClassifier := flag.Bool("classifier", false, "Использовать токен-классификатор для обогащения извлечения")
	skipEvaluation := flag.Bool("skip-eval", false, "Пропустить этап оценки")
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
	log.Printf("📊 Найдено %d предложений", len(products))

	startTime := time.Now()

	// Этап 1: обучение маппингов
	run, err := db.StartRun("findmappings")
	if err != nil {
		log.Fatalf("❌ Ошибка регистрации запуска: %v", err)
	}
	log.Println("\n🚀 Этап 1: обучение маппингов меток...")
	if err := processing.FindMappings(products); err != nil {
		db.FailRun(run.RunUUID)
		log.Fatalf("❌ Ошибка обучения маппингов: %v", err)
	}
	db.CompleteRun(run.RunUUID, len(products), 0)

	// Этап 2: слияние спецификаций
	run, err = db.StartRun("mergespecs")
	if err != nil {
		log.Fatalf("❌ Ошибка регистрации запуска: %v", err)
	}
	log.Println("\n🚀 Этап 2: слияние спецификаций...")
	stats, err := processing.MergeSpecs(products)
	if err != nil {
		db.FailRun(run.RunUUID)
		log.Fatalf("❌ Ошибка слияния спецификаций: %v", err)
	}
	db.CompleteRun(run.RunUUID, stats.TotalProducts, stats.TotalFailures)

	// Этап 3: оценка против эталона
	if !*skipEvaluation {
		run, err = db.StartRun("evaluate")
		if err != nil {
			log.Fatalf("❌ Ошибка регистрации запуска: %v", err)
		}
		log.Println("\n🚀 Этап 3: оценка качества извлечения...")
		report, err := processing.Evaluate(products)
		if err != nil {
			db.FailRun(run.RunUUID)
			log.Fatalf("❌ Ошибка оценки: %v", err)
		}
		if err := db.SaveEvaluation(run.RunUUID, report); err != nil {
			log.Printf("⚠ Не удалось сохранить итоги оценки: %v", err)
		}
		db.CompleteRun(run.RunUUID, len(report.PerProduct), 0)
	}

	duration := time.Since(startTime)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✓ Конвейер успешно завершен!")
	fmt.Printf("⏱  Время выполнения: %v\n", duration.Round(time.Second))
	fmt.Printf("📊 Предложений: %d, товаров: %d, ошибок: %d\n",
		stats.TotalOffers, stats.TotalProducts, stats.TotalFailures)
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
