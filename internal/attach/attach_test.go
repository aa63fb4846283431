package attach

import (
	"testing"

	"github.com/dmitrijs2005/finkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	png := FileMeta{Name: "receipt.png", MimeType: "image/png", Size: 10 * 1024 * 1024}

	tests := []struct {
		name    string
		file    FileMeta
		count   int
		wantErr error
	}{
		{name: "valid png under limit", file: png, count: 4, wantErr: nil},
		{name: "limit reached", file: png, count: 5, wantErr: common.ErrAttachmentLimitReached},
		{name: "limit exceeded", file: png, count: 7, wantErr: common.ErrAttachmentLimitReached},
		{
			name:    "16 MiB pdf too large",
			file:    FileMeta{Name: "big.pdf", MimeType: "application/pdf", Size: 16 * 1024 * 1024},
			count:   0,
			wantErr: common.ErrAttachmentTooLarge,
		},
		{
			name:    "exactly 15 MiB allowed",
			file:    FileMeta{Name: "ok.pdf", MimeType: "application/pdf", Size: 15 * 1024 * 1024},
			count:   0,
			wantErr: nil,
		},
		{
			name:    "disallowed type",
			file:    FileMeta{Name: "run.exe", MimeType: "application/octet-stream", Size: 10},
			count:   0,
			wantErr: common.ErrAttachmentInvalidType,
		},
		{
			name: "limit wins over type",
			file: FileMeta{Name: "run.exe", MimeType: "application/octet-stream", Size: 10},
			// both checks would fail; order says the count check reports first
			count:   5,
			wantErr: common.ErrAttachmentLimitReached,
		},
		{
			name:    "type wins over size",
			file:    FileMeta{Name: "big.bin", MimeType: "application/octet-stream", Size: 20 * 1024 * 1024},
			count:   0,
			wantErr: common.ErrAttachmentInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file, tt.count)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateBatch(t *testing.T) {
	png := func(name string) FileMeta {
		return FileMeta{Name: name, MimeType: "image/png", Size: 1024}
	}
	exe := FileMeta{Name: "bad.exe", MimeType: "application/octet-stream", Size: 1024}

	t.Run("running count increments only on pass", func(t *testing.T) {
		files := []FileMeta{png("1"), exe, png("2"), png("3")}
		valid, errs := ValidateBatch(files, 3)

		// 3 existing + 2 passing fills the limit; the third png is rejected
		require.Len(t, valid, 2)
		require.Len(t, errs, 2)
		require.ErrorIs(t, errs[0], common.ErrAttachmentInvalidType)
		require.ErrorIs(t, errs[1], common.ErrAttachmentLimitReached)
	})

	t.Run("error kinds deduplicated", func(t *testing.T) {
		files := []FileMeta{exe, exe, exe}
		valid, errs := ValidateBatch(files, 0)

		require.Empty(t, valid)
		require.Len(t, errs, 1)
		require.ErrorIs(t, errs[0], common.ErrAttachmentInvalidType)
	})

	t.Run("all valid", func(t *testing.T) {
		valid, errs := ValidateBatch([]FileMeta{png("a"), png("b")}, 0)
		require.Len(t, valid, 2)
		require.Empty(t, errs)
	})
}

func TestGenerateID(t *testing.T) {
	id1 := GenerateID(1700000000000, 0)
	id2 := GenerateID(1700000000000, 1)
	id3 := GenerateID(1700000000001, 0)

	require.Equal(t, "att_1700000000000_0", id1)
	require.NotEqual(t, id1, id2)
	require.NotEqual(t, id1, id3)

	// deterministic
	require.Equal(t, id1, GenerateID(1700000000000, 0))
}

func TestGenerateStorageFilename(t *testing.T) {
	tests := []struct {
		name     string
		original string
		want     string
	}{
		{name: "simple", original: "receipt.png", want: "att_1_0_receipt.png"},
		{name: "strips unsafe chars", original: "my receipt (final)!.pdf", want: "att_1_0_myreceiptfinal.pdf"},
		{
			name:     "truncates long base, keeps extension",
			original: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.jpg",
			want:     "att_1_0_aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.jpg",
		},
		{name: "no extension", original: "notes", want: "att_1_0_notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GenerateStorageFilename("att_1_0", tt.original))
		})
	}
}

func TestNewRecord(t *testing.T) {
	f := FileMeta{Name: "doc.pdf", MimeType: "application/pdf", Size: 12345}
	r := NewRecord(f, "att_9_0")

	require.Equal(t, "att_9_0", r.ID)
	require.Equal(t, "doc.pdf", r.Filename)
	require.Equal(t, "application/pdf", r.MimeType)
	require.EqualValues(t, 12345, r.Size)
	require.False(t, r.UploadedAt.IsZero())
	require.Nil(t, r.DriveFileID)
	require.Nil(t, r.LocalFilename)
}
