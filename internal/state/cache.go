package state

import (
	"sync"

	"github.com/ylchen07/jira-loader/internal/issue"
	"github.com/ylchen07/jira-loader/internal/jira"
)

// Cache holds lightweight shared state for a loader session: the resolved
// project and the result of the most recent import.
type Cache struct {
	mu         sync.RWMutex
	project    *jira.ProjectInfo
	lastImport *issue.BatchResult
}

// NewCache creates a Cache.
func NewCache() *Cache {
	return &Cache{}
}

// SetProject stores the resolved project info.
func (c *Cache) SetProject(info *jira.ProjectInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if info == nil {
		c.project = nil
		return
	}
	copied := *info
	c.project = &copied
}

// Project returns the cached project info, if any.
func (c *Cache) Project() (*jira.ProjectInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.project == nil {
		return nil, false
	}
	copied := *c.project
	return &copied, true
}

// SetLastImport stores the outcome of the most recent batch run.
func (c *Cache) SetLastImport(result *issue.BatchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if result == nil {
		c.lastImport = nil
		return
	}
	copied := *result
	copied.Outcomes = append([]issue.Outcome(nil), result.Outcomes...)
	c.lastImport = &copied
}

// LastImport returns the most recent batch result, if any.
func (c *Cache) LastImport() (*issue.BatchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastImport == nil {
		return nil, false
	}
	copied := *c.lastImport
	copied.Outcomes = append([]issue.Outcome(nil), c.lastImport.Outcomes...)
	return &copied, true
}
