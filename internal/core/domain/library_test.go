package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ktxload/internal/core/domain"
)

func TestLibrarySpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    domain.LibrarySpec
		wantErr error
	}{
		{name: "valid with dependency", spec: domain.NewLibrarySpec("ktx-jni", "ktx")},
		{name: "valid without dependency", spec: domain.NewLibrarySpec("ktx")},
		{name: "empty name", spec: domain.NewLibrarySpec(""), wantErr: domain.ErrInvalidLibraryName},
		{name: "blank name", spec: domain.NewLibrarySpec("  "), wantErr: domain.ErrInvalidLibraryName},
		{name: "path traversal", spec: domain.NewLibrarySpec("../ktx"), wantErr: domain.ErrInvalidLibraryName},
		{name: "backslash", spec: domain.NewLibrarySpec(`a\b`), wantErr: domain.ErrInvalidLibraryName},
		{name: "dot dot", spec: domain.NewLibrarySpec(".."), wantErr: domain.ErrInvalidLibraryName},
		{name: "invalid dependency", spec: domain.NewLibrarySpec("ktx-jni", ""), wantErr: domain.ErrInvalidLibraryName},
		{name: "self dependency", spec: domain.NewLibrarySpec("ktx", "ktx"), wantErr: domain.ErrSelfDependency},
		{name: "duplicate dependency", spec: domain.NewLibrarySpec("ktx-jni", "ktx", "ktx"), wantErr: domain.ErrDuplicateDependency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
