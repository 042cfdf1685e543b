package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/qdrant/go-client/qdrant"

	"resumeai/reviewer/internal/models"
)

// Point kinds stored in the collection.
const (
	kindRole   = "role"
	kindResume = "resume"
)

// RoleStoreService is the vector index over the role catalog and the
// uploaded resumes. Role points back the similar-role search used during
// analysis; resume points are written by the background indexer.
type RoleStoreService interface {
	InitCollection() error
	UpsertRole(ctx context.Context, role models.Role, embedding []float32) error
	SearchSimilarRoles(ctx context.Context, queryEmbedding []float32, limit int) ([]RoleMatch, error)
	UpsertResumeChunk(ctx context.Context, docID string, chunkIndex int, text string, embedding []float32) error
	DeleteResume(ctx context.Context, docID string) error
}

type RoleMatch struct {
	Role  models.Role
	Score float32
}

type roleStoreService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewRoleStoreService(urlStr, apiKey, collectionName string) (RoleStoreService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &roleStoreService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements RoleStoreService.
func (s *roleStoreService) InitCollection() error {
	ctx := context.Background()

	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Collection already exists")
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", s.collectionName)
	return nil
}

// UpsertRole implements RoleStoreService. Role points use a stable ID
// derived from the title so reseeding overwrites instead of duplicating.
func (s *roleStoreService) UpsertRole(ctx context.Context, role models.Role, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(stableID(kindRole + ":" + strings.ToLower(role.Title))),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"kind":        kindRole,
			"title":       role.Title,
			"description": role.Description,
			"skills":      strings.Join(role.Skills, ", "),
		}),
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert role: %w", err)
	}

	return nil
}

// SearchSimilarRoles implements RoleStoreService.
func (s *roleStoreService) SearchSimilarRoles(ctx context.Context, queryEmbedding []float32, limit int) ([]RoleMatch, error) {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("kind", kindRole),
		},
	}

	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search roles: %w", err)
	}

	var matches []RoleMatch
	for _, point := range searchResult {
		payload := point.Payload

		match := RoleMatch{Score: point.Score}
		match.Role.Title = payloadString(payload, "title")
		match.Role.Description = payloadString(payload, "description")
		match.Role.Skills = models.SplitSkills(payloadString(payload, "skills"))

		matches = append(matches, match)
	}

	return matches, nil
}

// UpsertResumeChunk implements RoleStoreService.
func (s *roleStoreService) UpsertResumeChunk(ctx context.Context, docID string, chunkIndex int, text string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDNum(stableID(fmt.Sprintf("%s:%s:%d", kindResume, docID, chunkIndex))),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"kind":   kindResume,
			"doc_id": docID,
			"chunk":  int64(chunkIndex),
			"text":   text,
		}),
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert resume chunk: %w", err)
	}

	return nil
}

// DeleteResume implements RoleStoreService.
func (s *roleStoreService) DeleteResume(ctx context.Context, docID string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("kind", kindResume),
			qdrant.NewMatch("doc_id", docID),
		},
	}

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete resume points: %w", err)
	}

	return nil
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if value, ok := payload[key]; ok {
		if s, ok := value.GetKind().(*qdrant.Value_StringValue); ok {
			return s.StringValue
		}
	}
	return ""
}

// stableID hashes a string key into a point ID (FNV-1a).
func stableID(key string) uint64 {
	var hash uint64 = 14695981039346656037
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= 1099511628211
	}
	return hash
}
