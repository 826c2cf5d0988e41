package application

import (
	"errors"
	"testing"

	"reelcut/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "title",
			value:     "Test Title",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "title",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "title",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired(%q, %q) error = %v, wantErr %v",
					tt.fieldName, tt.value, err, tt.wantErr)
			}
			if err != nil {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			}
		})
	}
}

func validProject() *domain.Project {
	return domain.NewProject(domain.SourceVideo{
		ID:       "vid-001",
		Title:    "Take 1",
		VideoURL: "https://cdn.example.com/vid-001.mp4",
		Duration: 12.5,
	})
}

func TestValidateProject(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *domain.Project)
		wantErr bool
	}{
		{
			name:    "fresh project is valid",
			mutate:  func(p *domain.Project) {},
			wantErr: false,
		},
		{
			name:    "no tracks",
			mutate:  func(p *domain.Project) { p.Tracks = nil },
			wantErr: true,
		},
		{
			name:    "track missing id",
			mutate:  func(p *domain.Project) { p.Tracks[0].ID = "" },
			wantErr: true,
		},
		{
			name:    "clip missing id",
			mutate:  func(p *domain.Project) { p.Tracks[0].Clips[0].ID = "" },
			wantErr: true,
		},
		{
			name:    "negative start time",
			mutate:  func(p *domain.Project) { p.Tracks[0].Clips[0].StartTime = -1 },
			wantErr: true,
		},
		{
			name: "end at or before start",
			mutate: func(p *domain.Project) {
				p.Tracks[0].Clips[0].EndTime = p.Tracks[0].Clips[0].StartTime
			},
			wantErr: true,
		},
		{
			name:    "negative position",
			mutate:  func(p *domain.Project) { p.Tracks[0].Clips[0].Position = -0.5 },
			wantErr: true,
		},
		{
			name:    "volume above one",
			mutate:  func(p *domain.Project) { p.Tracks[0].Clips[0].Volume = 1.5 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(p)
			err := ValidateProject(p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProject() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProjectNil(t *testing.T) {
	if err := ValidateProject(nil); err == nil {
		t.Error("expected error for nil project")
	}
}
