// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package style

import "slices"

// FontSetting describes one font key the application understands.
type FontSetting struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	InputType   InputType `json:"input_type"`
}

// fontSettings is the built-in catalog, in display order.
var fontSettings = [...]FontSetting{
	{Key: "DefaultFamily", Label: "標準フォント", Description: "標準のフォント名", InputType: InputFamilyOnly},
	{Key: "Control", Label: "コントロールフォント", Description: "標準のコントロールのフォントサイズ", InputType: InputSizeOnly},
	{Key: "EditControl", Label: "エディットコントロール", Description: "エディットコントロールのフォント（等幅推奨）", InputType: InputBoth},
	{Key: "PreviewTime", Label: "プレビュー時間表示", Description: "プレビュー時間表示のフォントサイズ", InputType: InputSizeOnly},
	{Key: "LayerObject", Label: "レイヤー・オブジェクト編集", Description: "レイヤー・オブジェクト編集部分のフォントサイズ", InputType: InputSizeOnly},
	{Key: "TimeGauge", Label: "フレーム時間ゲージ", Description: "フレーム時間ゲージのフォントサイズ", InputType: InputSizeOnly},
	{Key: "Footer", Label: "フッター", Description: "フッターのフォントサイズ", InputType: InputSizeOnly},
	{Key: "TextEdit", Label: "テキスト編集", Description: "テキスト編集のフォント（等幅推奨）", InputType: InputBoth},
	{Key: "Log", Label: "ログ", Description: "ログのフォント（等幅推奨）", InputType: InputBoth},
}

// FontSettings returns a copy of the catalog in display order.
func FontSettings() []FontSetting {
	return slices.Clone(fontSettings[:])
}

// LookupFontSetting finds the catalog entry for key (case-sensitive).
func LookupFontSetting(key string) (FontSetting, bool) {
	for _, s := range fontSettings {
		if s.Key == key {
			return s, true
		}
	}
	return FontSetting{}, false
}
