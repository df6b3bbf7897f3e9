package site

// indexTemplate renders the landing page with the list of tips.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="styles.css">
</head>
<body>
<header><h1>{{.Title}}</h1></header>
<main>
<ol class="tips">
{{range .Sections}}<li><a href="tips/{{.Anchor}}.html">{{.Heading}}</a></li>
{{end}}</ol>
</main>
<footer>Generated {{.GeneratedAt.Format "2006-01-02 15:04 UTC"}}</footer>
</body>
</html>
`

// sectionTemplate renders a single tip page with sidebar navigation.
const sectionTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Section.Heading}} - {{.Title}}</title>
<link rel="stylesheet" href="../styles.css">
</head>
<body>
<header><h1><a href="../index.html">{{.Title}}</a></h1></header>
<div class="layout">
<nav>
<ol class="tips">
{{range .All}}<li><a href="{{.Anchor}}.html"{{if eq .Anchor $.Section.Anchor}} class="active"{{end}}>{{.Heading}}</a></li>
{{end}}</ol>
</nav>
<main>
<h2 id="{{.Section.Anchor}}">{{.Section.Heading}}</h2>
{{range .Section.Paragraphs}}<p>{{.}}</p>
{{end}}{{range .Section.Examples}}<pre><code class="language-{{.Language}}">{{.SQL}}</code></pre>
{{end}}</main>
</div>
</body>
</html>
`

const siteCSS = `:root {
  --bg: #ffffff;
  --fg: #1a1a2e;
  --accent: #0f4c81;
  --muted: #6b7280;
  --code-bg: #f6f8fa;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  color: var(--fg);
  background: var(--bg);
  line-height: 1.6;
}
header { padding: 1rem 2rem; border-bottom: 1px solid #e5e7eb; }
header h1 { margin: 0; font-size: 1.4rem; }
header h1 a { color: inherit; text-decoration: none; }
main { padding: 1rem 2rem; max-width: 48rem; }
footer { padding: 1rem 2rem; color: var(--muted); font-size: 0.85rem; }
.layout { display: flex; }
nav { width: 20rem; padding: 1rem; border-right: 1px solid #e5e7eb; }
nav a { color: var(--fg); text-decoration: none; font-size: 0.9rem; }
nav a.active { color: var(--accent); font-weight: 600; }
.tips li { margin: 0.3rem 0; }
.tips a:hover { color: var(--accent); }
pre {
  background: var(--code-bg);
  padding: 1rem;
  border-radius: 6px;
  overflow-x: auto;
  font-size: 0.9rem;
}
code { font-family: "SF Mono", Menlo, Consolas, monospace; }
`
