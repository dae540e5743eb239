package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/PaesslerAG/jsonpath"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/studio-mirai/prime-machin-contracts/internal/errors"
)

// ModuleNamePath locates the module name inside a sui_getObject result.
const ModuleNamePath = "$.data.content.fields.module_name"

// ObjectDataOptions selects which parts of an object sui_getObject returns.
type ObjectDataOptions struct {
	ShowType                bool `json:"showType"`
	ShowOwner               bool `json:"showOwner"`
	ShowPreviousTransaction bool `json:"showPreviousTransaction"`
	ShowDisplay             bool `json:"showDisplay"`
	ShowContent             bool `json:"showContent"`
	ShowBcs                 bool `json:"showBcs"`
	ShowStorageRebate       bool `json:"showStorageRebate"`
}

// ContentOnly requests only the object content.
var ContentOnly = ObjectDataOptions{ShowContent: true}

// GetObject calls sui_getObject and returns the decoded result document.
func (c *Client) GetObject(ctx context.Context, objectID string, opts ObjectDataOptions) (any, error) {
	raw, err := c.Call(ctx, "sui_getObject", objectID, opts)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrMalformedRPCResponse, err, "decoding sui_getObject result")
	}
	return doc, nil
}

// FetchModuleName returns the title-cased module_name field of a Publisher
// object.
func (c *Client) FetchModuleName(ctx context.Context, objectID string) (string, error) {
	doc, err := c.GetObject(ctx, objectID, ContentOnly)
	if err != nil {
		return "", fmt.Errorf("fetching object %s: %w", objectID, err)
	}

	name, err := ExtractString(doc, ModuleNamePath)
	if err != nil {
		return "", fmt.Errorf("object %s: %w", objectID, err)
	}
	return TitleCase(name), nil
}

// ExtractString evaluates a JSONPath expression against doc and requires a
// non-empty string result.
func ExtractString(doc any, path string) (string, error) {
	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", oerrors.WrapCause(oerrors.ErrMalformedRPCResponse, err, path)
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s: %w: expected non-empty string, got %T", path, oerrors.ErrMalformedRPCResponse, val)
	}
	return s, nil
}

var letterRun = regexp.MustCompile(`\p{L}+`)

// TitleCase upper-cases the first letter of every run of letters and
// lower-cases the rest: "nft" becomes "Nft", "prime_machin" becomes
// "Prime_Machin".
func TitleCase(s string) string {
	caser := cases.Title(language.Und)
	return letterRun.ReplaceAllStringFunc(s, caser.String)
}
