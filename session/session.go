package session

import (
	"sort"
	"strings"
	"sync"
	"time"

	"crypto-sweep/model"

	"github.com/shopspring/decimal"
)

// Session ... The in-memory aggregate behind one sweep: discovered assets,
// the user's selection, the chosen destination and the active quote. Created
// on wallet connect, refilled on every rescan and dropped on disconnect.
// Derived reads recompute on every call; nothing is cached.
type Session struct {
	mu sync.RWMutex

	id               string
	connectedWallets []string
	assets           []model.Asset
	selected         map[string]bool

	destinationChain  *model.Chain
	destinationToken  *model.Token
	destinationWallet string

	quote *model.Quote

	lastTouched time.Time
}

func newSession(id string, wallets []string) *Session {
	return &Session{
		id:               id,
		connectedWallets: append([]string{}, wallets...),
		selected:         map[string]bool{},
		lastTouched:      time.Now(),
	}
}

// ID ...
func (s *Session) ID() string {
	return s.id
}

// ConnectedWallets ...
func (s *Session) ConnectedWallets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.connectedWallets...)
}

// SetConnectedWallets ...
func (s *Session) SetConnectedWallets(wallets []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectedWallets = append([]string{}, wallets...)
	s.touch()
}

// Assets ... The full discovered asset list
func (s *Session) Assets() []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Asset{}, s.assets...)
}

// ReplaceAssets ... Swaps in a freshly scanned asset list. Selected ids that
// no longer resolve to an asset are dropped so the selection stays a subset
// of the list.
func (s *Session) ReplaceAssets(assets []model.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = append([]model.Asset{}, assets...)
	present := map[string]bool{}
	for _, asset := range s.assets {
		present[asset.ID] = true
	}
	for id := range s.selected {
		if !present[id] {
			delete(s.selected, id)
		}
	}
	s.touch()
}

// ToggleSelection ... Adds or removes one asset id from the selection.
// Unknown ids are accepted; they simply never surface in the derived views.
func (s *Session) ToggleSelection(id string, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if selected {
		s.selected[id] = true
	} else {
		delete(s.selected, id)
	}
	s.touch()
}

// SelectAll ...
func (s *Session) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, asset := range s.assets {
		s.selected[asset.ID] = true
	}
	s.touch()
}

// DeselectAll ...
func (s *Session) DeselectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = map[string]bool{}
	s.touch()
}

// SelectedIDs ...
func (s *Session) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := []string{}
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectedAssets ... The selected assets ordered by chain name, then by
// token address descending
func (s *Session) SelectedAssets() []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := []model.Asset{}
	for _, asset := range s.assets {
		if s.selected[asset.ID] {
			selected = append(selected, asset)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].Chain.ID != selected[j].Chain.ID {
			return strings.Compare(selected[i].Chain.Name, selected[j].Chain.Name) < 0
		}
		return strings.Compare(selected[i].TokenAddress, selected[j].TokenAddress) > 0
	})
	return selected
}

// TotalValue ... Sum of value over the selected assets, recomputed on read
func (s *Session) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, asset := range s.SelectedAssets() {
		total = total.Add(asset.Value)
	}
	return total
}

// SetDestinationChain ...
func (s *Session) SetDestinationChain(chain *model.Chain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinationChain = chain
	s.touch()
}

// DestinationChain ...
func (s *Session) DestinationChain() *model.Chain {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destinationChain
}

// SetDestinationToken ...
func (s *Session) SetDestinationToken(token *model.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinationToken = token
	s.touch()
}

// DestinationToken ...
func (s *Session) DestinationToken() *model.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destinationToken
}

// SetDestinationWallet ...
func (s *Session) SetDestinationWallet(wallet string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinationWallet = wallet
	s.touch()
}

// DestinationWallet ...
func (s *Session) DestinationWallet() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destinationWallet
}

// SetQuote ...
func (s *Session) SetQuote(quote *model.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quote = quote
	s.touch()
}

// Quote ...
func (s *Session) Quote() *model.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quote
}

// LastTouched ...
func (s *Session) LastTouched() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastTouched
}

// touch must be called with the write lock held.
func (s *Session) touch() {
	s.lastTouched = time.Now()
}
