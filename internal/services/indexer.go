package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumeai/reviewer/internal/repositories"
)

// Indexer embeds uploaded resumes into the vector store in the background.
// Uploads enqueue their document ID; a poller sweeps up anything missed
// (e.g. after a crash between upload and indexing).
type Indexer interface {
	Start(ctx context.Context)
	Stop()
	EnqueueDocument(docID uuid.UUID)
}

type indexer struct {
	docRepo      repositories.DocumentRepository
	gemini       GeminiService
	roleStore    RoleStoreService
	chunker      TextChunker
	concurrency  int
	pollInterval time.Duration
	jobQueue     chan uuid.UUID
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewIndexer(
	docRepo repositories.DocumentRepository,
	gemini GeminiService,
	roleStore RoleStoreService,
	concurrency int,
	pollInterval time.Duration,
) Indexer {
	return &indexer{
		docRepo:      docRepo,
		gemini:       gemini,
		roleStore:    roleStore,
		chunker:      NewTextChunker(),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		jobQueue:     make(chan uuid.UUID, 100),
		stopChan:     make(chan struct{}),
	}
}

// Start implements Indexer.
func (ix *indexer) Start(ctx context.Context) {
	log.Printf("🚀 Starting indexer with %d concurrent workers\n", ix.concurrency)

	for i := 0; i < ix.concurrency; i++ {
		ix.wg.Add(1)
		go ix.processJobs(ctx, i+1)
	}

	ix.wg.Add(1)
	go ix.pollUnindexed(ctx)
}

// Stop implements Indexer.
func (ix *indexer) Stop() {
	log.Println("🛑 Stopping indexer...")
	close(ix.stopChan)
	ix.wg.Wait()
	log.Println("✅ Indexer stopped")
}

// EnqueueDocument implements Indexer.
func (ix *indexer) EnqueueDocument(docID uuid.UUID) {
	select {
	case ix.jobQueue <- docID:
		log.Printf("📥 Document %s enqueued for indexing\n", docID)
	case <-ix.stopChan:
		log.Printf("⚠️  Indexer stopped, cannot enqueue document %s\n", docID)
	}
}

func (ix *indexer) processJobs(ctx context.Context, workerID int) {
	defer ix.wg.Done()

	for {
		select {
		case <-ix.stopChan:
			log.Printf("👷 Indexer worker #%d stopped\n", workerID)
			return
		case docID := <-ix.jobQueue:
			if err := ix.indexDocument(ctx, docID); err != nil {
				log.Printf("❌ Indexer worker #%d failed on document %s: %v\n", workerID, docID, err)
			} else {
				log.Printf("✅ Indexer worker #%d indexed document %s\n", workerID, docID)
			}
		}
	}
}

func (ix *indexer) pollUnindexed(ctx context.Context) {
	defer ix.wg.Done()
	ticker := time.NewTicker(ix.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ix.stopChan:
			return
		case <-ticker.C:
			docs, err := ix.docRepo.FindUnindexed(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch unindexed documents: %v\n", err)
				continue
			}

			for _, doc := range docs {
				ix.EnqueueDocument(doc.ID)
			}
		}
	}
}

func (ix *indexer) indexDocument(ctx context.Context, docID uuid.UUID) error {
	doc, err := ix.docRepo.FindByID(docID)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	if doc.Indexed {
		return nil
	}

	chunks := ix.chunker.ChunkText(doc.RawText, 1000, 200)
	for i, chunk := range chunks {
		embedding, err := ix.gemini.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}

		if err := ix.roleStore.UpsertResumeChunk(ctx, doc.ID.String(), i, chunk, embedding); err != nil {
			return fmt.Errorf("failed to store chunk %d: %w", i, err)
		}
	}

	if err := ix.docRepo.MarkIndexed(doc.ID); err != nil {
		return fmt.Errorf("failed to mark document indexed: %w", err)
	}

	return nil
}
