package webgui

import (
	"strings"
	"unicode"
)

const (
	scriptOpenTag  = "<script>"
	scriptOpenStem = "<script"
	scriptCloseTag = "</script>"
	bodyCloseTag   = "</body>"
)

// CityClockScript renders the city dropdown when the City Clock plugin is
// selected and sends the chosen index over the /ws websocket.
const CityClockScript = `<script>!function(){var w,id,C=['Helsinki','Omsk','Berlin','St. Petersburg'];function cn(){w=new WebSocket('ws://'+location.host+'/ws');w.onmessage=function(e){try{var d=JSON.parse(e.data);if(d.plugins)for(var i=0;i<d.plugins.length;i++)if(d.plugins[i].name==='City Clock'){id=d.plugins[i].id;break}}catch(x){}};w.onclose=function(){setTimeout(cn,3e3)}}cn();setInterval(function(){var s=document.querySelectorAll('select');if(!s.length)return;var p=s[0],t=p.options[p.selectedIndex],ok=t&&t.textContent==='City Clock',d=document.getElementById('ccs');if(!ok){if(d)d.remove();return}if(d)return;d=document.createElement('div');d.id='ccs';d.innerHTML='<div class="my-6 border-t border-gray-200"></div><div class="space-y-3"><h3 class="text-sm font-semibold text-gray-700 uppercase tracking-wide">City</h3><div class="space-y-2"><select id="ccSel" class="flex-1 px-2.5 py-2.5 bg-gray-50 border border-gray-200 rounded w-full"></select></div></div>';var e=d.querySelector('#ccSel');for(var i=0;i<C.length;i++){var o=document.createElement('option');o.value=i;o.textContent=C[i];e.appendChild(o)}var divs=document.querySelectorAll('[class*="border-t"][class*="border-gray"]');for(var i=0;i<divs.length;i++){var nx=divs[i].nextElementSibling;if(nx){var h3=nx.querySelector('h3');if(h3&&h3.textContent.indexOf('Brightness')>=0){divs[i].parentElement.insertBefore(d,divs[i]);break}}}if(!d.parentElement){var btns=document.querySelectorAll('button');for(var i=0;i<btns.length;i++){if(btns[i].textContent.indexOf('Default')>=0){btns[i].closest('.space-y-3,.flex-col').after(d);break}}}fetch('/api/cityclock').then(function(r){return r.json()}).then(function(j){if(j.cityIndex!==undefined)e.value=j.cityIndex}).catch(function(){});e.onchange=function(){if(w&&w.readyState===1&&id)w.send(JSON.stringify({event:'cityclock',cityIndex:+this.value,plugin:id}))}},500)}()</script>`

// FragmentMarker recognizes an inline <script> block by the start of its body
// (Open, optional whitespace, Ident) and the text right before its closing
// tag (Tail).
type FragmentMarker struct {
	Name  string
	Open  string
	Ident string
	Tail  string
}

var (
	// LegacyFragment is the old "City Clock Settings" panel script.
	LegacyFragment = FragmentMarker{
		Name:  "legacy city clock settings",
		Open:  "(function(){",
		Ident: "var ccId",
		Tail:  "})()",
	}
	// CurrentFragment matches CityClockScript.
	CurrentFragment = FragmentMarker{
		Name:  "city clock dropdown",
		Open:  "!function(){",
		Ident: "var w,id,C=",
		Tail:  "}()",
	}
)

type PatchStats struct {
	LegacyRemoved  int
	CurrentRemoved int
}

// Patch removes the legacy fragment and any earlier injection, then injects
// CityClockScript once. Patch(Patch(h)) == Patch(h).
func Patch(html string) (string, PatchStats) {
	var stats PatchStats
	html, stats.LegacyRemoved = StripLegacyFragment(html)
	html, stats.CurrentRemoved = StripCurrentFragment(html)
	return InjectFragment(html, CityClockScript), stats
}

func StripLegacyFragment(html string) (string, int) {
	return LegacyFragment.Strip(html)
}

func StripCurrentFragment(html string) (string, int) {
	return CurrentFragment.Strip(html)
}

// InjectFragment inserts fragment before the first </body>, or appends it
// when the document has none.
func InjectFragment(html, fragment string) string {
	if idx := strings.Index(html, bodyCloseTag); idx >= 0 {
		return html[:idx] + fragment + html[idx:]
	}
	return html + fragment
}

// Strip removes every fragment matching m and returns the number removed.
// Text around a removed fragment is kept byte for byte.
func (m FragmentMarker) Strip(html string) (string, int) {
	removed := 0
	from := 0
	for {
		start, end, ok := m.Find(html, from)
		if !ok {
			return html, removed
		}
		html = html[:start] + html[end:]
		removed++
		from = start
	}
}

// Find returns the bounds of the first matching fragment at or after from,
// opening tag through closing tag.
func (m FragmentMarker) Find(html string, from int) (start, end int, ok bool) {
	anchor := scriptOpenTag + m.Open
	for from <= len(html) {
		idx := strings.Index(html[from:], anchor)
		if idx < 0 {
			return 0, 0, false
		}
		start = from + idx
		bodyStart := start + len(scriptOpenTag)
		rest := strings.TrimLeftFunc(html[bodyStart+len(m.Open):], unicode.IsSpace)
		if strings.HasPrefix(rest, m.Ident) {
			if end, ok = m.scanEnd(html, bodyStart); ok {
				return start, end, true
			}
		}
		from = bodyStart
	}
	return 0, 0, false
}

// scanEnd walks script open/close tags from bodyStart and returns the offset
// just past the closing tag that balances the fragment. A closing tag at depth
// zero that does not follow Tail sits inside the body (a string literal, say)
// and the scan goes on.
func (m FragmentMarker) scanEnd(html string, bodyStart int) (int, bool) {
	depth := 1
	pos := bodyStart
	for {
		nextClose := strings.Index(html[pos:], scriptCloseTag)
		if nextClose < 0 {
			return 0, false
		}
		nextOpen := strings.Index(html[pos:], scriptOpenStem)
		if nextOpen >= 0 && nextOpen < nextClose {
			depth++
			pos += nextOpen + len(scriptOpenStem)
			continue
		}
		closeAt := pos + nextClose
		pos = closeAt + len(scriptCloseTag)
		depth--
		if depth > 0 {
			continue
		}
		if strings.HasSuffix(html[bodyStart:closeAt], m.Tail) {
			return pos, true
		}
		depth = 1
	}
}
