package seed

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("/srv/project")

	assert.Equal(t, filepath.Join("/srv/project", "build", "cidata"), opts.InputDir)
	assert.Equal(t, filepath.Join("/srv/project", "build", "seed.iso"), opts.OutputPath)
	assert.Equal(t, DefaultVolumeID, opts.VolumeID)
}

func TestOptions_Paths(t *testing.T) {
	opts := DefaultOptions("/srv/project")

	assert.Equal(t, filepath.Join(opts.InputDir, "meta-data"), opts.MetaDataPath())
	assert.Equal(t, filepath.Join(opts.InputDir, "user-data"), opts.UserDataPath())
}

func TestOptions_ApplyEnv(t *testing.T) {
	opts := DefaultOptions("/srv/project")
	opts.ApplyEnv(map[string]string{
		"SEED_INPUT_DIR": "/srv/cidata",
		"SEED_OUTPUT":    "/srv/images/seed.iso",
		"SEED_VOLUME_ID": "other",
	})

	assert.Equal(t, "/srv/cidata", opts.InputDir)
	assert.Equal(t, "/srv/images/seed.iso", opts.OutputPath)
	assert.Equal(t, "other", opts.VolumeID)
}

func TestOptions_ApplyEnv_EmptyValuesIgnored(t *testing.T) {
	opts := DefaultOptions("/srv/project")
	opts.ApplyEnv(map[string]string{"SEED_INPUT_DIR": ""})

	assert.Equal(t, filepath.Join("/srv/project", "build", "cidata"), opts.InputDir)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(o *Options) {},
		},
		{
			name:    "missing input dir",
			mutate:  func(o *Options) { o.InputDir = "" },
			wantErr: "input directory is required",
		},
		{
			name:    "missing output path",
			mutate:  func(o *Options) { o.OutputPath = "" },
			wantErr: "output path is required",
		},
		{
			name:    "wrong extension",
			mutate:  func(o *Options) { o.OutputPath = "/tmp/seed.img" },
			wantErr: ".iso extension",
		},
		{
			name:    "volume id too long",
			mutate:  func(o *Options) { o.VolumeID = strings.Repeat("x", 33) },
			wantErr: "volume identifier too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions("/srv/project")
			tt.mutate(opts)

			err := opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestOptions_Validate_FillsDefaultVolumeID(t *testing.T) {
	opts := DefaultOptions("/srv/project")
	opts.VolumeID = ""

	require.NoError(t, opts.Validate())
	assert.Equal(t, DefaultVolumeID, opts.VolumeID)
}

func TestMissingInputError_Message(t *testing.T) {
	err := &MissingInputError{Paths: []string{"/a/meta-data", "/a/user-data"}}
	assert.Contains(t, err.Error(), "/a/meta-data")
	assert.Contains(t, err.Error(), "/a/user-data")
}
