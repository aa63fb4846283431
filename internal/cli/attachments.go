package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/finkeeper/internal/attach"
)

// attachFiles validates local files against the attachment policy for one
// transaction and reports the storage names they would be uploaded under.
// The binary upload itself is handled by the storage backend.
func (a *App) attachFiles(args []string) {
	if !a.requireOpen() {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: attach <transaction-id> <file> [file ...]")
		return
	}

	txID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Transaction id must be a number.")
		return
	}

	files := make([]attach.FileMeta, 0, len(args)-1)
	for _, path := range args[1:] {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return
		}
		files = append(files, attach.FileMeta{
			Name:     filepath.Base(path),
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
			Size:     info.Size(),
		})
	}

	valid, errs := attach.ValidateBatch(files, 0)
	for _, err := range errs {
		fmt.Fprintf(a.out, "Rejected: %v\n", err)
	}
	for i, f := range valid {
		id := attach.GenerateID(txID, i)
		rec := attach.NewRecord(f, id)
		fmt.Fprintf(a.out, "%s\t%s\t%d bytes -> %s\n",
			rec.ID, rec.MimeType, rec.Size, attach.GenerateStorageFilename(id, f.Name))
	}
}
