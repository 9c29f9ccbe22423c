package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const lessonPage = `<!DOCTYPE html>
<html><head><title>Loops in ABL</title><script>track()</script></head>
<body>
<header>Course header</header>
<nav class="lesson-nav"><a href="/prev">Prev</a></nav>
<main>
  <div class="lesson-content">
    <h1>Loops</h1>
    <p>Use <strong>FOR EACH</strong>.</p>
    <div class="code-block-wrapper"><div class="code-header"><span class="code-language">OpenEdge 4GL</span></div>
    <pre class="code-block language-progress"><code>FOR EACH Customer:</code></pre></div>
    <button>Mark complete</button>
  </div>
</main>
<footer>Footer</footer>
</body></html>`

func TestExtract_LessonContainer(t *testing.T) {
	body, err := New().Extract(lessonPage)
	require.NoError(t, err)

	require.Contains(t, body, "<h1>Loops</h1>")
	require.Contains(t, body, "<strong>FOR EACH</strong>")
	require.Contains(t, body, "FOR EACH Customer:")
	require.NotContains(t, body, "OpenEdge 4GL")
	require.NotContains(t, body, "Mark complete")
	require.NotContains(t, body, "Course header")
	require.NotContains(t, body, "Footer")
	require.NotContains(t, body, "lesson-content")
}

func TestExtract_FallsBackToBody(t *testing.T) {
	body, err := New().Extract("<html><body><p>Only body</p><nav>menu</nav></body></html>")
	require.NoError(t, err)
	require.Equal(t, "<p>Only body</p>", body)
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Loops in ABL", Title(lessonPage))
	require.Equal(t, "Heading", Title("<body><h1> Heading </h1></body>"))
	require.Equal(t, "", Title("<p>none</p>"))
}
