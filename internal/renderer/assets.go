package renderer

const pageCSS = `
:root { --bg:#1e1e2e; --panel:#2d2d44; --accent:#6c63ff; --text:#e0e0f0; --muted:#9a9ab0; }
* { box-sizing:border-box; }
body { margin:0; background:var(--bg); color:var(--text); font-family:system-ui, sans-serif; }
a { color:inherit; }
.site-header { padding:1.5rem 2rem; background:var(--panel); }
.site-header h1 { margin:0; font-size:1.6rem; }
.site-header .back { text-decoration:none; color:var(--muted); }
.tabs { display:flex; gap:0.5rem; padding:1rem 2rem 0; }
.tab { padding:0.6rem 1.2rem; border-radius:6px 6px 0 0; background:var(--panel); text-decoration:none; color:var(--muted); }
.tab.active { background:var(--accent); color:#fff; }
main { padding:1rem 2rem 3rem; }
.tab-content { display:none; }
.tab-content.active { display:block; }
.search { width:100%; padding:0.7rem 1rem; margin:0 0 1rem; border:1px solid var(--panel); border-radius:6px; background:#151521; color:var(--text); font-size:1rem; }
.ref-table { width:100%; border-collapse:collapse; }
.ref-table th, .ref-table td { padding:0.55rem 0.8rem; border-bottom:1px solid var(--panel); text-align:left; }
.ref-table .tag, .ref-table .property { font-family:ui-monospace, monospace; color:#ff6b6b; text-decoration:none; cursor:pointer; }
.ref-table .property { color:#4fc3f7; }
.empty, .count { color:var(--muted); }
.detail h1 { margin-top:0; }
.detail .group { color:var(--muted); margin-top:-0.5rem; }
.code pre { padding:1rem; border-radius:6px; overflow:auto; }
.preview-box { padding:1.5rem; border:1px dashed var(--accent); border-radius:6px; background:#151521; }
.modal { display:none; position:fixed; inset:0; background:rgba(0,0,0,0.7); align-items:center; justify-content:center; z-index:10; }
.modal-content { background:var(--bg); width:min(900px, 92vw); max-height:90vh; overflow:auto; padding:1.5rem 2rem; border-radius:10px; position:relative; }
.modal-close { position:absolute; top:0.8rem; right:1rem; background:none; border:none; color:var(--muted); font-size:1.6rem; cursor:pointer; }
`

const modalMarkup = `<div id="entryModal" class="modal" role="dialog" aria-modal="true">
<div class="modal-content">
<button id="closeModal" class="modal-close" aria-label="Close">&times;</button>
<h2 id="modalTitle"></h2>
<div id="tagExplanation" class="explanation"></div>
<h3>Example</h3>
<div id="codeExample" class="code"></div>
<h3>Preview</h3>
<div id="outputPreview" class="preview-box"></div>
</div>
</div>
`

const pageJS = `
document.addEventListener('DOMContentLoaded', function () {
  document.querySelectorAll('input.search').forEach(function (input) {
    var body = document.getElementById(input.dataset.table);
    if (!body) return;
    if (input.form) input.form.addEventListener('submit', function (e) { e.preventDefault(); });
    input.addEventListener('input', function () {
      var term = input.value.toLowerCase().trim();
      body.querySelectorAll('tr').forEach(function (row) {
        if (row.classList.contains('group-header')) {
          row.style.display = term ? 'none' : '';
        } else if (row.classList.contains('data-row')) {
          row.style.display = row.innerText.toLowerCase().includes(term) ? '' : 'none';
        }
      });
    });
  });

  document.querySelectorAll('.tab').forEach(function (tab) {
    tab.addEventListener('click', function (e) {
      var content = document.getElementById(tab.dataset.tab + '-content');
      if (!content) return;
      e.preventDefault();
      document.querySelectorAll('.tab, .tab-content').forEach(function (el) { el.classList.remove('active'); });
      tab.classList.add('active');
      content.classList.add('active');
    });
  });

  var modal = document.getElementById('entryModal');
  if (!modal || document.body.dataset.api !== '1') return;
  var close = function () { modal.style.display = 'none'; };
  document.getElementById('closeModal').addEventListener('click', close);
  window.addEventListener('click', function (e) { if (e.target === modal) close(); });
  window.addEventListener('keydown', function (e) { if (e.key === 'Escape') close(); });

  document.body.addEventListener('click', function (e) {
    var link = e.target.closest('.tag, .property');
    if (!link) return;
    e.preventDefault();
    var name = link.dataset.tag || link.dataset.prop;
    fetch('/api/entry/' + link.dataset.kind + '/' + encodeURIComponent(name))
      .then(function (res) { if (!res.ok) throw new Error(res.status); return res.json(); })
      .then(function (d) {
        document.getElementById('modalTitle').textContent = d.title;
        document.getElementById('tagExplanation').innerHTML = d.explanation_html;
        document.getElementById('codeExample').innerHTML = d.code_html;
        document.getElementById('outputPreview').innerHTML = d.preview_html;
        modal.style.display = 'flex';
      })
      .catch(function () { window.location.href = link.href; });
  });
});
`

const liveReloadJS = `
(function () {
  var proto = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
  var connect = function () {
    var ws = new WebSocket(proto + window.location.host + '/ws');
    ws.onmessage = function (event) {
      var msg = JSON.parse(event.data);
      if (msg.type === 'catalog_reload' || msg.type === 'full_reload') window.location.reload();
    };
    ws.onclose = function () { setTimeout(connect, 2000); };
  };
  connect();
})();
`
