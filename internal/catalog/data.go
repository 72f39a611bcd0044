package catalog

// Built-in reference data. Group order is display order; a group member
// without an entry is listed in the group but never rendered as a row.

var tagGroups = []Group{
	{Name: "1. Root & Metadata", Members: []string{"html", "head", "title", "base", "link", "meta", "style"}},
	{Name: "2. Scripting", Members: []string{"script", "noscript", "canvas"}},
	{Name: "3. Structure", Members: []string{"body", "header", "footer", "main", "section", "article", "nav", "aside", "h1", "h2", "h3", "h4", "h5", "h6", "hgroup", "address"}},
	{Name: "4. Text Content", Members: []string{"p", "hr", "pre", "blockquote", "ol", "ul", "li", "dl", "dt", "dd", "figure", "figcaption", "div", "menu", "search"}},
	{Name: "5. Inline Semantics", Members: []string{"a", "em", "strong", "small", "s", "cite", "q", "dfn", "abbr", "ruby", "rt", "rp", "data", "time", "code", "var", "samp", "kbd", "sub", "sup", "i", "b", "u", "mark", "bdi", "bdo", "span", "br", "wbr"}},
	{Name: "6. Edits", Members: []string{"ins", "del"}},
	{Name: "7. Media", Members: []string{"picture", "source", "img", "iframe", "embed", "object", "video", "audio", "track", "map", "area"}},
	{Name: "8. Tables", Members: []string{"table", "caption", "colgroup", "col", "tbody", "thead", "tfoot", "tr", "td", "th"}},
	{Name: "9. Forms", Members: []string{"form", "label", "input", "button", "select", "datalist", "optgroup", "option", "textarea", "output", "progress", "meter", "fieldset", "legend"}},
	{Name: "10. Interactive", Members: []string{"details", "summary", "dialog"}},
	{Name: "11. Components", Members: []string{"slot", "template"}},
}

var tagEntries = map[string]Entry{
	"html": {Description: "Root element", Example: `<!DOCTYPE html>
<html lang="en">
 <body>...</body>
</html>`},
	"head": {Description: "Metadata container", Example: `<head>
 <title>Title</title>
</head>`},
	"title": {Description: "Page Title", Example: "<title>My Page</title>"},
	"base": {Description: "Base URL", Example: "<base href=\"/\" target=\"_blank\">"},
	"link": {Description: "Link resource", Example: "<link rel=\"stylesheet\" href=\"style.css\">"},
	"meta": {Description: "Metadata", Example: "<meta charset=\"UTF-8\">"},
	"style": {Description: "Internal CSS", Example: "<style>body{color:red}</style>"},
	"script": {Description: "Script", Example: "<script>console.log(\"Hi\")</script>"},
	"noscript": {Description: "No-script", Example: "<noscript>Enable JS</noscript>"},
	"canvas": {Description: "Canvas", Example: "<canvas id=\"c\"></canvas>"},
	"body": {Description: "Body", Example: "<body>Content</body>"},
	"header": {Description: "Header", Example: "<header>Logo</header>"},
	"footer": {Description: "Footer", Example: "<footer>(c) 2023</footer>"},
	"main": {Description: "Main", Example: "<main>Content</main>"},
	"section": {Description: "Section", Example: "<section>...</section>"},
	"article": {Description: "Article", Example: "<article>Blog</article>"},
	"nav": {Description: "Nav", Example: "<nav><a href=\"#\">Link</a></nav>"},
	"aside": {Description: "Aside", Example: "<aside>Sidebar</aside>"},
	"address": {Description: "Address", Example: "<address>Contact...</address>"},
	"h1": {Description: "Heading 1", Example: "<h1>Title</h1>"},
	"h2": {Description: "Heading 2", Example: "<h2>Title</h2>"},
	"h3": {Description: "Heading 3", Example: "<h3>Title</h3>"},
	"h4": {Description: "Heading 4", Example: "<h4>Title</h4>"},
	"h5": {Description: "Heading 5", Example: "<h5>Title</h5>"},
	"h6": {Description: "Heading 6", Example: "<h6>Title</h6>"},
	"hgroup": {Description: "H-Group", Example: "<hgroup><h1>T</h1><h2>S</h2></hgroup>"},
	"p": {Description: "Paragraph", Example: "<p>Text</p>"},
	"hr": {Description: "Thematic Break", Example: "<hr>"},
	"pre": {Description: "Preformatted", Example: "<pre>  Space</pre>"},
	"blockquote": {Description: "Blockquote", Example: "<blockquote>Quote</blockquote>"},
	"ol": {Description: "Ordered List", Example: "<ol><li>1</li></ol>"},
	"ul": {Description: "Unordered List", Example: "<ul><li>.</li></ul>"},
	"li": {Description: "List Item", Example: "<li>Item</li>"},
	"dl": {Description: "Desc List", Example: "<dl><dt>T</dt><dd>D</dd></dl>"},
	"dt": {Description: "Term", Example: "<dt>Term</dt>"},
	"dd": {Description: "Description", Example: "<dd>Desc</dd>"},
	"figure": {Description: "Figure", Example: "<figure><img src=\"x.jpg\"><figcaption>Cap</figcaption></figure>"},
	"figcaption": {Description: "Fig Caption", Example: "<figcaption>Cap</figcaption>"},
	"div": {Description: "Div", Example: "<div>Content</div>"},
	"menu": {Description: "Menu", Example: "<menu><li><button>X</button></li></menu>"},
	"search": {Description: "Search", Example: "<search><form>...</form></search>"},
	"a": {Description: "Anchor", Example: "<a href=\"#\">Link</a>"},
	"em": {Description: "Emphasis", Example: "<em>Italic</em>"},
	"strong": {Description: "Strong", Example: "<strong>Bold</strong>"},
	"small": {Description: "Small", Example: "<small>Txt</small>"},
	"s": {Description: "Strikethrough", Example: "<s>Old</s>"},
	"cite": {Description: "Cite", Example: "<cite>Book</cite>"},
	"q": {Description: "Quote", Example: "<q>Hi</q>"},
	"dfn": {Description: "Definition", Example: "<dfn>HTML</dfn>"},
	"abbr": {Description: "Abbreviation", Example: "<abbr title=\"X\">X</abbr>"},
	"ruby": {Description: "Ruby", Example: "<ruby>漢<rt>kan</rt></ruby>"},
	"rt": {Description: "Ruby Text", Example: "<rt>txt</rt>"},
	"rp": {Description: "Ruby Paren", Example: "<rp>(</rp>"},
	"data": {Description: "Data", Example: "<data value=\"1\">One</data>"},
	"time": {Description: "Time", Example: "<time>2023</time>"},
	"code": {Description: "Code", Example: "<code>var x</code>"},
	"var": {Description: "Variable", Example: "<var>x</var>"},
	"samp": {Description: "Sample", Example: "<samp>Out</samp>"},
	"kbd": {Description: "Keyboard", Example: "<kbd>Ctrl</kbd>"},
	"sub": {Description: "Subscript", Example: "H<sub>2</sub>"},
	"sup": {Description: "Superscript", Example: "x<sup>2</sup>"},
	"i": {Description: "Italic", Example: "<i>Txt</i>"},
	"b": {Description: "Bold", Example: "<b>Txt</b>"},
	"u": {Description: "Underline", Example: "<u>Txt</u>"},
	"mark": {Description: "Mark", Example: "<mark>Hi</mark>"},
	"bdi": {Description: "BiDi Isolate", Example: "<bdi>User</bdi>"},
	"bdo": {Description: "BiDi Override", Example: "<bdo dir=\"rtl\">Txt</bdo>"},
	"span": {Description: "Span", Example: "<span>Txt</span>"},
	"br": {Description: "Break", Example: "<br>"},
	"wbr": {Description: "Word Break", Example: "Word<wbr>Break"},
	"ins": {Description: "Inserted", Example: "<ins>New</ins>"},
	"del": {Description: "Deleted", Example: "<del>Old</del>"},
	"picture": {Description: "Picture", Example: "<picture><img src=\"x.jpg\"></picture>"},
	"source": {Description: "Source", Example: "<source src=\"x\">"},
	"img": {Description: "Image", Example: "<img src=\"x.jpg\" alt=\"x\">"},
	"iframe": {Description: "Iframe", Example: "<iframe src=\"url\"></iframe>"},
	"embed": {Description: "Embed", Example: "<embed src=\"x\">"},
	"object": {Description: "Object", Example: "<object data=\"x\"></object>"},
	"video": {Description: "Video", Example: "<video src=\"v.mp4\"></video>"},
	"audio": {Description: "Audio", Example: "<audio src=\"a.mp3\"></audio>"},
	"track": {Description: "Track", Example: "<track src=\"s.vtt\">"},
	"map": {Description: "Map", Example: "<map name=\"x\"><area></map>"},
	"area": {Description: "Area", Example: "<area coords=\"0,0,10,10\">"},
	"table": {Description: "Table", Example: "<table><tr><td>D</td></tr></table>"},
	"caption": {Description: "Caption", Example: "<caption>Title</caption>"},
	"colgroup": {Description: "Colgroup", Example: "<colgroup><col></colgroup>"},
	"col": {Description: "Col", Example: "<col style=\"background:red\">"},
	"tbody": {Description: "Tbody", Example: "<tbody>...</tbody>"},
	"thead": {Description: "Thead", Example: "<thead>...</thead>"},
	"tfoot": {Description: "Tfoot", Example: "<tfoot>...</tfoot>"},
	"tr": {Description: "Row", Example: "<tr>...</tr>"},
	"td": {Description: "Cell", Example: "<td>Data</td>"},
	"th": {Description: "Header Cell", Example: "<th>Head</th>"},
	"form": {Description: "Form", Example: "<form><input></form>"},
	"label": {Description: "Label", Example: "<label>Name</label>"},
	"input": {Description: "Input", Example: "<input type=\"text\">"},
	"button": {Description: "Button", Example: "<button>Click</button>"},
	"select": {Description: "Select", Example: "<select><option>A</option></select>"},
	"datalist": {Description: "Datalist", Example: "<datalist id=\"x\"><option>A</option></datalist>"},
	"optgroup": {Description: "Optgroup", Example: "<optgroup label=\"G\"><option>O</option></optgroup>"},
	"option": {Description: "Option", Example: "<option>O</option>"},
	"textarea": {Description: "Textarea", Example: "<textarea>...</textarea>"},
	"output": {Description: "Output", Example: "<output>0</output>"},
	"progress": {Description: "Progress", Example: "<progress value=\"5\" max=\"10\"></progress>"},
	"meter": {Description: "Meter", Example: "<meter value=\"0.5\"></meter>"},
	"fieldset": {Description: "Fieldset", Example: "<fieldset><legend>T</legend></fieldset>"},
	"legend": {Description: "Legend", Example: "<legend>Title</legend>"},
	"details": {Description: "Details", Example: "<details><summary>T</summary></details>"},
	"summary": {Description: "Summary", Example: "<summary>Title</summary>"},
	"dialog": {Description: "Dialog", Example: "<dialog open>Hi</dialog>"},
	"slot": {Description: "Slot", Example: "<slot></slot>"},
	"template": {Description: "Template", Example: "<template></template>"},
}

var propertyGroups = []Group{
	{Name: "1. Box Model & Layout", Members: []string{"width", "height", "margin", "padding", "border", "box-sizing", "display", "position", "top", "left", "right", "bottom", "z-index", "float", "clear", "overflow", "visibility", "min-width", "max-width", "min-height", "max-height"}},
	{Name: "2. Typography", Members: []string{"color", "font-size", "font-family", "font-weight", "text-align", "line-height", "text-decoration", "text-transform", "letter-spacing", "word-spacing", "text-indent", "white-space", "word-break", "text-shadow", "font-style", "vertical-align", "direction"}},
	{Name: "3. Backgrounds", Members: []string{"background", "background-color", "background-image", "background-size", "background-position", "background-repeat", "opacity", "box-shadow", "background-attachment"}},
	{Name: "4. Flexbox (Parent)", Members: []string{"flex-direction", "justify-content", "align-items", "flex-wrap", "align-content", "gap"}},
	{Name: "5. Flexbox (Children)", Members: []string{"flex", "flex-basis", "flex-grow", "flex-shrink", "order", "align-self"}},
	{Name: "6. Grid", Members: []string{"grid-template-columns", "grid-template-rows", "grid-template-areas", "grid-auto-flow", "place-items", "place-content", "grid-column", "grid-row", "grid-area", "place-self"}},
	{Name: "7. Borders & Outlines", Members: []string{"border-radius", "border-width", "border-style", "border-color", "outline", "outline-offset", "border-collapse", "border-spacing"}},
	{Name: "8. Animation", Members: []string{"transition", "transform", "animation", "animation-delay", "animation-duration", "animation-iteration-count", "animation-direction", "animation-timing-function"}},
	{Name: "9. Advanced", Members: []string{"filter", "backdrop-filter", "clip-path", "cursor", "pointer-events", "user-select", "object-fit"}},
}

var propertyEntries = map[string]Entry{
	"width": {Description: "Width", Example: "div { width: 50%; }"},
	"height": {Description: "Height", Example: "div { height: 120px; }"},
	"margin": {Description: "Outer space", Example: "div { margin: 20px; }"},
	"padding": {Description: "Inner space", Example: "div { padding: 20px; }"},
	"border": {Description: "Border", Example: "div { border: 5px solid red; }"},
	"box-sizing": {Description: "Box model", Example: "div { box-sizing: border-box; padding: 20px; width: 100%; border: 5px solid blue; }"},
	"display": {Description: "Display", Example: "div { display: inline-block; width: 50px; height: 50px; }"},
	"position": {Description: "Position", Example: "div { position: relative; top: 20px; left: 20px; }"},
	"top": {Description: "Top offset", Example: "div { position: relative; top: 30px; }"},
	"left": {Description: "Left offset", Example: "div { position: relative; left: 30px; }"},
	"right": {Description: "Right offset", Example: "div { position: absolute; right: 0; }"},
	"bottom": {Description: "Bottom offset", Example: "div { position: absolute; bottom: 0; }"},
	"z-index": {Description: "Stack order", Example: "div { position: relative; z-index: 10; top: -10px; }"},
	"float": {Description: "Float", Example: "div { float: right; }"},
	"clear": {Description: "Clear", Example: "div { clear: both; }"},
	"overflow": {Description: "Overflow", Example: "div { overflow: scroll; height: 50px; }"},
	"visibility": {Description: "Visibility", Example: "div { visibility: hidden; }"},
	"min-width": {Description: "Min Width", Example: "div { min-width: 200px; }"},
	"max-width": {Description: "Max Width", Example: "div { max-width: 300px; width: 100%; }"},
	"min-height": {Description: "Min Height", Example: "div { min-height: 100px; }"},
	"max-height": {Description: "Max Height", Example: "div { max-height: 50px; overflow: auto; }"},
	"color": {Description: "Color", Example: "p { color: #ff6b6b; }"},
	"font-size": {Description: "Font Size", Example: "p { font-size: 24px; }"},
	"font-family": {Description: "Font Family", Example: "p { font-family: monospace; }"},
	"font-weight": {Description: "Weight", Example: "p { font-weight: bold; }"},
	"font-style": {Description: "Style", Example: "p { font-style: italic; }"},
	"text-align": {Description: "Align", Example: "p { text-align: center; }"},
	"line-height": {Description: "Line Height", Example: "p { line-height: 2.5; }"},
	"text-decoration": {Description: "Decoration", Example: "p { text-decoration: underline; }"},
	"text-transform": {Description: "Transform", Example: "p { text-transform: uppercase; }"},
	"letter-spacing": {Description: "Letter Space", Example: "p { letter-spacing: 5px; }"},
	"word-spacing": {Description: "Word Space", Example: "p { word-spacing: 20px; }"},
	"text-indent": {Description: "Indent", Example: "p { text-indent: 50px; }"},
	"white-space": {Description: "White Space", Example: "p { white-space: nowrap; overflow: hidden; }"},
	"word-break": {Description: "Word Break", Example: "p { word-break: break-all; width: 50px; }"},
	"text-shadow": {Description: "Shadow", Example: "h1 { text-shadow: 2px 2px 4px #000; }"},
	"background": {Description: "Background", Example: "div { background: linear-gradient(45deg, red, blue); }"},
	"background-color": {Description: "Bg Color", Example: "div { background-color: #6c63ff; }"},
	"background-image": {Description: "Bg Image", Example: "div { background-image: url(\"https://via.placeholder.com/150\"); }"},
	"background-size": {Description: "Bg Size", Example: "div { background-image: url(\"https://via.placeholder.com/50\"); background-size: cover; }"},
	"opacity": {Description: "Opacity", Example: "div { opacity: 0.5; background: red; }"},
	"box-shadow": {Description: "Box Shadow", Example: "div { box-shadow: 10px 10px 5px grey; background: white; }"},
	"flex-direction": {Description: "Flex Dir", Example: "div { display: flex; flex-direction: column; }"},
	"justify-content": {Description: "Justify", Example: "div { display: flex; justify-content: center; }"},
	"align-items": {Description: "Align", Example: "div { display: flex; align-items: center; }"},
	"flex-wrap": {Description: "Wrap", Example: "div { display: flex; flex-wrap: wrap; width: 100px; }"},
	"gap": {Description: "Gap", Example: "div { display: flex; gap: 20px; }"},
	"flex": {Description: "Flex", Example: ".parent { display: flex; } .child { flex: 1; }"},
	"order": {Description: "Order", Example: "div { order: -1; }"},
	"grid-template-columns": {Description: "Grid Cols", Example: "div { display: grid; grid-template-columns: 1fr 2fr; }"},
	"grid-template-rows": {Description: "Grid Rows", Example: "div { display: grid; grid-template-rows: 50px auto; }"},
	"place-items": {Description: "Place Items", Example: "div { display: grid; place-items: center; }"},
	"border-radius": {Description: "Radius", Example: "div { border-radius: 50%; }"},
	"transition": {Description: "Transition", Example: "div { transition: all 0.5s; background: red; } div:hover { width: 100%; }"},
	"transform": {Description: "Transform", Example: "div { transform: rotate(45deg); }"},
	"animation": {Description: "Animation", Example: "div { animation: spin 2s infinite; }"},
	"filter": {Description: "Filter", Example: "img { filter: grayscale(100%); }"},
	"cursor": {Description: "Cursor", Example: "div { cursor: pointer; }"},
}
