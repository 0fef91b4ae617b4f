package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"golang.org/x/net/html/charset"
)

const updateInfoType = "updateinfo"

// RepoMd has repomd data
type RepoMd struct {
	XMLName  xml.Name `xml:"repomd"`
	Revision string   `xml:"revision"`
	RepoList []Repo   `xml:"data"`
}

// Repo has a repo data entry
type Repo struct {
	Type     string   `xml:"type,attr"`
	Checksum Checksum `xml:"checksum"`
	Location Location `xml:"location"`
}

// Checksum of a repo data file
type Checksum struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// Location has a location of repo data
type Location struct {
	Href string `xml:"href,attr"`
}

func decodeRepoMd(data []byte) (*RepoMd, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	var repoMd RepoMd
	if err := decoder.Decode(&repoMd); err != nil {
		return nil, fmt.Errorf("failed to decode repomd.xml: %w", err)
	}
	return &repoMd, nil
}

// UpdateInfo returns the updateinfo entry, if any
func (r *RepoMd) UpdateInfo() (Repo, bool) {
	for _, repo := range r.RepoList {
		if repo.Type == updateInfoType {
			return repo, true
		}
	}
	return Repo{}, false
}
