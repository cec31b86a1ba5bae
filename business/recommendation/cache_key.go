package recommendation

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

const cacheKeyPrefix = "diverse-recommendations"

// cacheKey identifies a response by everything that can change it. The
// exclusion sets are part of the fingerprint so a cached list never leaks an
// id the caller asked to exclude.
func cacheKey(p plan) string {
	user := "anon"
	if p.userID != 0 {
		user = strconv.FormatUint(uint64(p.userID), 10)
	}
	region := p.filter.Region
	if region == "" {
		region = "all"
	}
	mode := p.modeName()
	if mode == "" {
		mode = "greedy"
	}

	return fmt.Sprintf("%s:%s:%s:%d:%s:%s:%s:%s",
		cacheKeyPrefix, p.pageContext, user, p.limit, region, p.algorithm, mode, fingerprint(p))
}

func fingerprint(p plan) string {
	payload, _ := json.Marshal(struct {
		Options  any      `json:"o"`
		Excluded []uint64 `json:"e"`
		Stores   []uint64 `json:"s"`
	}{p.opts, p.filter.ExcludeIDs, p.filter.ExcludeStoreIDs})

	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:12])
}
