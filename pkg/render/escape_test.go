package render

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		html  string
		attr  string
	}{
		{"empty", "", "", ""},
		{"plain", "Hello, World!", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry", "Tom &amp; Jerry"},
		{"angle brackets", "a < b > c", "a &lt; b &gt; c", "a &lt; b &gt; c"},
		{"quotes", `say "it's"`, "say &quot;it&#39;s&quot;", "say &quot;it&#39;s&quot;"},
		{"script", "<script>alert('x')</script>", "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;", "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;"},
		{"whitespace", "a\nb\tc\rd", "a\nb\tc\rd", "a&#10;b&#9;c&#13;d"},
		{"unicode", "Hello 世界 🌍", "Hello 世界 🌍", "Hello 世界 🌍"},
		{"already escaped", "&amp;", "&amp;amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.html {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.html)
			}
			if got := escapeAttr(tt.input); got != tt.attr {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.attr)
			}
		})
	}
}
