// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/pdfmarks/pkg/types"
)

var titleFolder = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// WriteInfo writes bookmarks as pdftk update_info_utf8 records.
func WriteInfo(w io.Writer, bookmarks []types.Bookmark) error {
	bw := bufio.NewWriter(w)
	for _, b := range bookmarks {
		fmt.Fprintln(bw, "BookmarkBegin")
		fmt.Fprintf(bw, "BookmarkTitle: %s\n", titleFolder.Replace(b.Title))
		fmt.Fprintf(bw, "BookmarkLevel: %d\n", b.Level)
		fmt.Fprintf(bw, "BookmarkPageNumber: %d\n", b.Page)
	}
	return bw.Flush()
}

// WriteInfoFile writes the bookmark description to path, replacing any
// existing file.
func WriteInfoFile(path string, bookmarks []types.Bookmark) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating bookmark description %s: %w", path, err)
	}
	if err := WriteInfo(f, bookmarks); err != nil {
		f.Close()
		return fmt.Errorf("writing bookmark description %s: %w", path, err)
	}
	return f.Close()
}
