package bridgeworld

import "github.com/bridgeworld/atlas-mine-watcher/mine"

// MockGraph serves canned records for tests.
type MockGraph struct {
	Records map[string]*HolderRecords
	Top     []mine.RawDeposit
	Err     error
}

func NewMockGraph() *MockGraph {
	return &MockGraph{Records: make(map[string]*HolderRecords)}
}

func (m *MockGraph) GetHolderRecords(address string) (*HolderRecords, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if records, ok := m.Records[address]; ok {
		return records, nil
	}
	return &HolderRecords{}, nil
}

func (m *MockGraph) GetTopDeposits(mineID string, first, skip int) ([]mine.RawDeposit, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if skip >= len(m.Top) {
		return nil, nil
	}
	end := skip + first
	if end > len(m.Top) {
		end = len(m.Top)
	}
	return m.Top[skip:end], nil
}
