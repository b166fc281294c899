package mocks

import "fastwrite/internal/models"

type FormReaderMock struct {
	StateFunc func() models.FormState
	Current   models.FormState
}

func (m *FormReaderMock) State() models.FormState {
	if m.StateFunc != nil {
		return m.StateFunc()
	}
	return m.Current.Clone()
}
