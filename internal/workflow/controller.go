// Package workflow drives the three-stage resume review flow: upload a PDF,
// pick a target role, read the analysis results.
package workflow

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"resumeai/reviewer/internal/models"
)

// Stage identifies where the review flow currently is.
type Stage int

const (
	StageUpload Stage = iota
	StageRoleSelection
	StageResults
)

func (s Stage) String() string {
	switch s {
	case StageUpload:
		return "upload"
	case StageRoleSelection:
		return "role_selection"
	case StageResults:
		return "results"
	default:
		return "unknown"
	}
}

// FileRef is a locally selected resume file, held in memory until submission.
type FileRef struct {
	Name string
	Size int64
	Data []byte
}

// Backend is the remote service the workflow submits resumes to.
type Backend interface {
	UploadResume(ctx context.Context, filename string, data []byte) (*models.ResumeRecord, error)
	AnalyzeResume(ctx context.Context, record *models.ResumeRecord, targetRole string) (*models.AnalysisResult, error)
}

// Snapshot is an immutable view of the controller state. Record and result
// pointers are shared and must be treated as read-only by callers.
type Snapshot struct {
	Stage          Stage
	SelectedFile   *FileRef
	ResumeRecord   *models.ResumeRecord
	TargetRole     string
	AnalysisResult *models.AnalysisResult
	Pending        bool
	LastError      string
}

// Controller owns the review flow state. All methods are safe for concurrent
// use; submissions run synchronously on the calling goroutine while a pending
// gate rejects overlapping calls.
type Controller struct {
	mu             sync.Mutex
	backend        Backend
	stage          Stage
	selectedFile   *FileRef
	resumeRecord   *models.ResumeRecord
	targetRole     string
	analysisResult *models.AnalysisResult
	pending        bool
	lastError      string
	listeners      []func(Snapshot)
}

func NewController(backend Backend) *Controller {
	return &Controller{
		backend: backend,
		stage:   StageUpload,
	}
}

// OnChange registers a listener invoked with a fresh snapshot after every
// state change.
func (c *Controller) OnChange(listener func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, listener)
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Stage:          c.stage,
		SelectedFile:   c.selectedFile,
		ResumeRecord:   c.resumeRecord,
		TargetRole:     c.targetRole,
		AnalysisResult: c.analysisResult,
		Pending:        c.pending,
		LastError:      c.lastError,
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	snapshot := c.snapshotLocked()
	listeners := make([]func(Snapshot), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}

// SelectFile stages a resume file for upload. Only PDF files are accepted;
// anything else is ignored. Selecting a new file replaces the previous one
// without touching the rest of the state.
func (c *Controller) SelectFile(file FileRef) {
	if !strings.EqualFold(filepath.Ext(file.Name), ".pdf") {
		return
	}

	c.mu.Lock()
	c.selectedFile = &file
	c.mu.Unlock()
	c.notify()
}

// ClearFile removes the staged file.
func (c *Controller) ClearFile() {
	c.mu.Lock()
	c.selectedFile = nil
	c.mu.Unlock()
	c.notify()
}

// SubmitUpload sends the staged file to the backend. It is a no-op when no
// file is staged or another submission is in flight. On success the flow
// advances to role selection; on failure the error message is recorded and
// the flow stays put.
func (c *Controller) SubmitUpload(ctx context.Context) {
	c.mu.Lock()
	if c.pending || c.selectedFile == nil {
		c.mu.Unlock()
		return
	}
	c.pending = true
	c.lastError = ""
	file := c.selectedFile
	c.mu.Unlock()
	c.notify()

	record, err := c.backend.UploadResume(ctx, file.Name, file.Data)

	c.mu.Lock()
	c.pending = false
	if err != nil {
		c.lastError = err.Error()
	} else {
		c.resumeRecord = record
		c.stage = StageRoleSelection
	}
	c.mu.Unlock()
	c.notify()
}

// SelectRole sets the target role. Roles outside the catalog are ignored.
func (c *Controller) SelectRole(role string) {
	match, ok := models.FindRole(role)
	if !ok {
		return
	}

	c.mu.Lock()
	c.targetRole = match.Title
	c.mu.Unlock()
	c.notify()
}

// SubmitAnalysis asks the backend to analyze the uploaded resume against the
// selected role. It is a no-op unless a record and role are present and no
// submission is in flight. On success the flow advances to results.
func (c *Controller) SubmitAnalysis(ctx context.Context) {
	c.mu.Lock()
	if c.pending || c.resumeRecord == nil || c.targetRole == "" {
		c.mu.Unlock()
		return
	}
	c.pending = true
	c.lastError = ""
	record := c.resumeRecord
	role := c.targetRole
	c.mu.Unlock()
	c.notify()

	result, err := c.backend.AnalyzeResume(ctx, record, role)

	c.mu.Lock()
	c.pending = false
	if err != nil {
		c.lastError = err.Error()
	} else {
		c.analysisResult = result
		c.stage = StageResults
	}
	c.mu.Unlock()
	c.notify()
}

// GoBack returns from role selection to the upload stage. The staged file is
// kept so the user can resubmit; the parsed record is dropped and will be
// regenerated on the next upload. In any other stage it is a no-op.
func (c *Controller) GoBack() {
	c.mu.Lock()
	if c.stage != StageRoleSelection || c.pending {
		c.mu.Unlock()
		return
	}
	c.stage = StageUpload
	c.resumeRecord = nil
	c.lastError = ""
	c.mu.Unlock()
	c.notify()
}

// Reset returns the controller to its initial state so a new resume can be
// reviewed from scratch.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.stage = StageUpload
	c.selectedFile = nil
	c.resumeRecord = nil
	c.targetRole = ""
	c.analysisResult = nil
	c.pending = false
	c.lastError = ""
	c.mu.Unlock()
	c.notify()
}

// MentorContext derives the chat grounding context from the latest analysis.
// It is zero until an analysis has completed.
func (c *Controller) MentorContext() models.MentorContext {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.analysisResult == nil {
		return models.MentorContext{}
	}
	return models.MentorContextFrom(c.analysisResult)
}
