package registry_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/registry"
)

const spamContract = "0x5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a5a"

func TestBlacklistRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr string
		validate    func(t *testing.T, reg registry.BlacklistRegistry)
	}{
		{
			name: "plain and prefixed chain ids",
			setupMocks: func(fs *mocks.MockFileSystem, js *mocks.MockJSON) {
				fs.EXPECT().
					ReadFile("blacklist.json").
					Return([]byte(`{"1": ["0x5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A5A"], "eip155:137": [" 0xabc "]}`), nil)
				js.EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validate: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsBlacklisted(1, spamContract))
				assert.True(t, reg.IsBlacklisted(137, "0xABC"))
				assert.False(t, reg.IsBlacklisted(137, spamContract))
				assert.False(t, reg.IsBlacklisted(1, "0xabc"))
			},
		},
		{
			name: "empty file",
			setupMocks: func(fs *mocks.MockFileSystem, js *mocks.MockJSON) {
				fs.EXPECT().ReadFile("blacklist.json").Return([]byte(`{}`), nil)
				js.EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validate: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.False(t, reg.IsBlacklisted(1, spamContract))
			},
		},
		{
			name: "read failure",
			setupMocks: func(fs *mocks.MockFileSystem, js *mocks.MockJSON) {
				fs.EXPECT().ReadFile("blacklist.json").Return(nil, errors.New("no such file"))
			},
			expectedErr: "failed to read blacklist file",
		},
		{
			name: "malformed json",
			setupMocks: func(fs *mocks.MockFileSystem, js *mocks.MockJSON) {
				fs.EXPECT().ReadFile("blacklist.json").Return([]byte(`[`), nil)
				js.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).Return(errors.New("unexpected end of JSON input"))
			},
			expectedErr: "failed to parse blacklist JSON",
		},
		{
			name: "unknown chain key",
			setupMocks: func(fs *mocks.MockFileSystem, js *mocks.MockJSON) {
				fs.EXPECT().ReadFile("blacklist.json").Return([]byte(`{"tezos:mainnet": ["KT1ABC"]}`), nil)
				js.EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: "invalid blacklist chain id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fs := mocks.NewMockFileSystem(ctrl)
			js := mocks.NewMockJSON(ctrl)
			tt.setupMocks(fs, js)

			reg, err := registry.NewBlacklistRegistryLoader(fs, js).Load("blacklist.json")
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, reg)
		})
	}
}

func TestBlacklistRegistry_Nil(t *testing.T) {
	reg, err := registry.NewBlacklistRegistry(nil)
	require.NoError(t, err)
	assert.False(t, reg.IsBlacklisted(domain.ChainID(1), spamContract))
}
