package snapshot

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/sparse"
	"github.com/shopkit/shoprec/vectorizer"
)

// 制品在 Store 中的 key 布局。manifest 记录构建元信息与维度，
// 加载时先校验 manifest，再逐个解码制品。
const (
	keyManifest   = "model/manifest"
	keyVectorizer = "model/tfidf_vectorizer"
	keyIndex      = "model/product_index"
	keyUserItem   = "model/user_item"
	keyUserRows   = "model/user_ids"
	keyPopularity = "model/popularity"
)

var artifactKeys = []string{
	keyManifest, keyVectorizer, keyIndex, keyUserItem, keyUserRows, keyPopularity,
}

type manifest struct {
	Version  int       `json:"version"`
	BuiltAt  time.Time `json:"built_at"`
	Products int       `json:"products"`
	Users    int       `json:"users"`
	Vocab    int       `json:"vocab"`
}

const manifestVersion = 1

// save 将快照的全部制品编码后批量写入 Store。
func save(ctx context.Context, st core.Store, snap *Snapshot) error {
	kvs := make(map[string][]byte, len(artifactKeys))

	put := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		kvs[key] = data
		return nil
	}

	mf := manifest{
		Version:  manifestVersion,
		BuiltAt:  time.Now().UTC(),
		Products: snap.Index.Rows,
		Users:    len(snap.UserRows),
		Vocab:    snap.Vectorizer.VocabSize(),
	}
	if err := put(keyManifest, mf); err != nil {
		return err
	}
	if err := put(keyVectorizer, snap.Vectorizer); err != nil {
		return err
	}
	if err := put(keyIndex, snap.Index); err != nil {
		return err
	}
	if err := put(keyUserItem, snap.UserItem); err != nil {
		return err
	}
	if err := put(keyUserRows, snap.UserRows); err != nil {
		return err
	}
	if err := put(keyPopularity, snap.Popularity); err != nil {
		return err
	}

	return st.BatchSet(ctx, kvs)
}

// load 从 Store 批量读取并解码全部制品。
// 任一制品缺失或解码失败都返回错误，绝不返回半成品快照。
func load(ctx context.Context, st core.Store) (*Snapshot, error) {
	blobs, err := st.BatchGet(ctx, artifactKeys)
	if err != nil {
		return nil, err
	}

	get := func(key string, v any) error {
		data, ok := blobs[key]
		if !ok {
			return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeNotFound,
				fmt.Sprintf("snapshot: artifact %q not found in %s store", key, st.Name()))
		}
		if err := json.Unmarshal(data, v); err != nil {
			return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
				fmt.Sprintf("snapshot: artifact %q corrupted: %v", key, err))
		}
		return nil
	}

	var mf manifest
	if err := get(keyManifest, &mf); err != nil {
		return nil, err
	}
	if mf.Version != manifestVersion {
		return nil, core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
			fmt.Sprintf("snapshot: unsupported manifest version %d", mf.Version))
	}

	snap := &Snapshot{
		Vectorizer: &vectorizer.Model{},
		Index:      &sparse.Matrix{},
		UserItem:   &sparse.Matrix{},
	}
	if err := get(keyVectorizer, snap.Vectorizer); err != nil {
		return nil, err
	}
	if err := get(keyIndex, snap.Index); err != nil {
		return nil, err
	}
	if err := get(keyUserItem, snap.UserItem); err != nil {
		return nil, err
	}
	if err := get(keyUserRows, &snap.UserRows); err != nil {
		return nil, err
	}
	if err := get(keyPopularity, &snap.Popularity); err != nil {
		return nil, err
	}

	// manifest 与制品自身的维度交叉校验
	if snap.Index.Rows != mf.Products || len(snap.UserRows) != mf.Users || snap.Vectorizer.VocabSize() != mf.Vocab {
		return nil, core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
			"snapshot: artifacts do not match manifest dimensions")
	}

	return snap, nil
}
