package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/sbilibin2017/library-api/internal/config"
	"github.com/sbilibin2017/library-api/internal/logger"
	"github.com/sbilibin2017/library-api/internal/models"
	"github.com/sbilibin2017/library-api/internal/repositories"
	"github.com/sbilibin2017/library-api/internal/services"
	"github.com/sbilibin2017/library-api/internal/storage"
)

var authors = []string{
	"Jane Austen", "Charles Dickens", "Mark Twain", "Ernest Hemingway", "Virginia Woolf",
	"F. Scott Fitzgerald", "George Orwell", "J.K. Rowling", "Toni Morrison", "Gabriel García Márquez",
	"Haruki Murakami", "Chimamanda Ngozi Adichie", "Kazuo Ishiguro", "Margaret Atwood", "Salman Rushdie",
	"Zadie Smith", "Donna Tartt", "David Mitchell", "Colson Whitehead", "Jhumpa Lahiri",
	"Michael Chabon", "Jonathan Franzen", "Ann Patchett", "Barbara Kingsolver", "Louise Erdrich",
	"Alice Munro", "Raymond Carver", "Flannery O'Connor", "James Baldwin", "Ralph Ellison",
}

var titles = []string{
	"The Great Adventure", "Echoes of Time", "Whispers in the Wind", "Shadows of the Past", "Dreams of Tomorrow",
	"Secrets Unveiled", "Journey to the Unknown", "Tales from the Heart", "Voices in the Dark", "Paths Less Traveled",
	"The Last Stand", "Breaking Free", "Finding Home", "Lost and Found", "Beyond the Horizon",
	"Under the Stars", "Through the Looking Glass", "Between the Lines", "Above the Clouds", "Beneath the Surface",
}

var descriptions = []string{
	"A captivating tale of adventure and discovery.",
	"An exploration of human nature and relationships.",
	"A story that will stay with you long after you finish reading.",
	"A beautifully written narrative that captures the essence of life.",
	"An engaging plot with well-developed characters.",
	"A thought-provoking examination of society and culture.",
	"A masterful work of literary fiction.",
	"A compelling story of love, loss, and redemption.",
	"An unforgettable journey through time and space.",
	"A powerful narrative that challenges conventional thinking.",
	"A richly detailed world brought to life through vivid prose.",
	"A story of courage and determination in the face of adversity.",
	"An intimate portrait of human experience.",
	"A tale that weaves together multiple perspectives.",
	"A literary masterpiece that explores deep themes.",
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	count := flag.Int("n", 200, "Number of books to generate")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := storage.Connect(ctx, storage.Options{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnectTimeout:  cfg.ConnectTimeout,
	})
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	svc := services.NewBookService(repositories.NewBookReadRepository(db), repositories.NewBookWriteRepository(db))
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	inserted, skipped, err := seed(ctx, svc, generateBooks(*count, rng))
	if err != nil {
		log.Fatalf("seeding stopped after %d books: %v", inserted, err)
	}
	fmt.Printf("Seeded %d books, skipped %d existing\n", inserted, skipped)
}

type bookCreator interface {
	Create(ctx context.Context, req models.CreateBookRequest) (*models.Book, error)
}

// seed creates every book, skipping names that are already taken.
func seed(ctx context.Context, svc bookCreator, books []models.CreateBookRequest) (inserted, skipped int, err error) {
	for _, b := range books {
		if _, err := svc.Create(ctx, b); err != nil {
			if errors.Is(err, services.ErrBookAlreadyExists) {
				skipped++
				continue
			}
			return inserted, skipped, err
		}
		inserted++
	}
	return inserted, skipped, nil
}

// generateBooks builds n books with unique names. Titles repeat with a
// numeric suffix once the base list is exhausted; about one in ten books has
// no published year.
func generateBooks(n int, rng *rand.Rand) []models.CreateBookRequest {
	books := make([]models.CreateBookRequest, 0, n)
	for i := 0; i < n; i++ {
		name := titles[i%len(titles)]
		if i >= len(titles) {
			name = fmt.Sprintf("%s %d", name, i/len(titles)+1)
		}

		description := descriptions[rng.IntN(len(descriptions))]
		book := models.CreateBookRequest{
			Name:        name,
			Author:      authors[rng.IntN(len(authors))],
			Description: &description,
		}
		if rng.Float64() >= 0.1 {
			year := 1800 + rng.IntN(2024-1800+1)
			book.PublishedYear = &year
		}
		books = append(books, book)
	}
	return books
}
