package planner

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CreateThread creates a new planning namespace seeded from the current
// active view and makes it the active thread. A random id is generated when
// none is given. Returns the thread id.
func (p *Planner) CreateThread(threadID string) string {
	id := threadID
	if id == "" {
		id = p.newID()
	}

	p.mu.Lock()
	snap := p.state.ThreadSnapshot.Clone()
	snap.OwnerUsername = ""
	snap.PasswordHash = ""
	p.state.Threads[id] = snap
	p.state.CurrentThreadID = id
	p.persist()
	p.mu.Unlock()
	return id
}

// SwitchThread copies the named thread's snapshot into the active view and
// marks it current. Unknown ids are a no-op.
func (p *Planner) SwitchThread(threadID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap, ok := p.state.Threads[threadID]
	if !ok {
		return false
	}
	active := snap.Clone()
	active.OwnerUsername = ""
	active.PasswordHash = ""
	p.state.ThreadSnapshot = active
	p.state.CurrentThreadID = threadID
	p.persist()
	return true
}

// ListThreads returns all known thread ids, in no particular order.
func (p *Planner) ListThreads() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.state.Threads))
	for id := range p.state.Threads {
		ids = append(ids, id)
	}
	return ids
}

// DeleteThread removes a thread and its authentication flag. If it was the
// active thread, the planner is left with no current thread; the active view
// keeps its data.
func (p *Planner) DeleteThread(threadID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.state.Threads[threadID]; !ok {
		return false
	}
	delete(p.state.Threads, threadID)
	delete(p.state.AuthenticatedThreads, threadID)
	if p.state.CurrentThreadID == threadID {
		p.state.CurrentThreadID = ""
	}
	p.persist()
	return true
}

// ExistsThread reports whether the thread is known.
func (p *Planner) ExistsThread(threadID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.state.Threads[threadID]
	return ok
}

// ThreadOwner returns the owner username stored on a thread, or "".
func (p *Planner) ThreadOwner(threadID string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Threads[threadID].OwnerUsername
}

// SetThreadCredentials attaches an owner username and, when a password is
// given, its bcrypt hash to an existing thread. Unknown threads are a
// silent no-op.
func (p *Planner) SetThreadCredentials(threadID, username, password string) error {
	// An empty password leaves the thread open: the owner name is kept
	// and no hash is stored, so the login gate stays disabled.
	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hash = string(h)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	snap, ok := p.state.Threads[threadID]
	if !ok {
		return nil
	}
	snap.OwnerUsername = username
	snap.PasswordHash = hash
	p.state.Threads[threadID] = snap
	p.persist()
	return nil
}

// ValidateThreadPassword checks a password against the thread's stored hash.
// False when the thread or its password is absent.
func (p *Planner) ValidateThreadPassword(threadID, password string) bool {
	p.mu.Lock()
	hash := p.state.Threads[threadID].PasswordHash
	p.mu.Unlock()
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ThreadHasPassword reports whether the thread has a password set.
func (p *Planner) ThreadHasPassword(threadID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Threads[threadID].PasswordHash != ""
}

// MarkThreadAuthenticated unlocks a thread for the current session.
func (p *Planner) MarkThreadAuthenticated(threadID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.AuthenticatedThreads[threadID] = true
	p.persist()
}

// IsThreadAuthenticated reports whether the thread is unlocked.
func (p *Planner) IsThreadAuthenticated(threadID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.AuthenticatedThreads[threadID]
}

// CreateThreadWithCredentials is the signup composite: create the thread,
// attach credentials, and mark it authenticated.
func (p *Planner) CreateThreadWithCredentials(threadID, username, password string) (string, error) {
	id := p.CreateThread(threadID)
	if err := p.SetThreadCredentials(id, username, password); err != nil {
		return "", err
	}
	p.MarkThreadAuthenticated(id)
	return id, nil
}

// Logout clears the current thread's authentication flag and detaches it.
// Thread data is kept.
func (p *Planner) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.state.CurrentThreadID
	if id == "" {
		return
	}
	delete(p.state.AuthenticatedThreads, id)
	p.state.CurrentThreadID = ""
	p.persist()
}
